// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

const (
	maxEquations     = 3
	maxContributions = 5
	maxGlossaryTerms = 6
	maxTLDRWords     = 120
	maxDefWords      = 12
)

// Create extracts document text for the paper and generates its digest.
// When no text can be obtained the result is a typed failure, never an
// error: downstream stages must skip graph construction for that paper
// rather than feed it garbage.
func Create(ctx context.Context, extractors []TextExtractor, paper types.Paper, w io.Writer) types.DigestResult {
	text := ExtractText(ctx, extractors, paper, w)
	if text == "" {
		return types.DigestResult{
			Status: types.DigestFailed,
			Reason: "no document text could be extracted",
		}
	}
	return Generate(paper, text)
}

// Generate builds the Markdown digest from the paper metadata and its
// extracted text: metadata table, TL;DR, contributions, assessment, and
// glossary. The zone layout is load-bearing — the concept map stage scans
// these exact headings and table shapes.
func Generate(paper types.Paper, text string) types.DigestResult {
	topic := identifyPrimaryTopic(paper.Title, paper.Abstract)
	equations := extractEquations(text)
	tldr := generateTLDR(paper.Abstract, text)
	contributions := extractContributions(text)
	glossary := extractGlossary(text)

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", paper.Title)

	published := "Unknown"
	if !paper.Published.IsZero() {
		published = paper.Published.Format("2006-01-02")
	}
	equationCell := "None found"
	if len(equations) > 0 {
		equationCell = strings.Join(equations, ", ")
	}

	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	fmt.Fprintf(&b, "| Authors | %s |\n", strings.Join(paper.Authors, ", "))
	fmt.Fprintf(&b, "| Published | %s |\n", published)
	fmt.Fprintf(&b, "| Primary Topic | %s |\n", topic)
	fmt.Fprintf(&b, "| Key Equations | %s |\n", equationCell)

	fmt.Fprintf(&b, "\n## TL;DR (≤ 120 words)\n%s\n", tldr)

	b.WriteString("\n## Main Contributions\n")
	if len(contributions) == 0 {
		b.WriteString("• Contributions not clearly identified\n")
	} else {
		for _, c := range contributions {
			b.WriteString(c + "\n")
		}
	}

	fmt.Fprintf(&b, "\n## Critical Assessment\n"+
		"**Why it matters:** This work advances our understanding of %s by providing "+
		"new insights into quantum systems. The research contributes to the growing "+
		"body of knowledge in quantum science with practical implications.\n\n"+
		"**Potential weaknesses:** The methodology may have limitations that require "+
		"further validation in different experimental conditions.\n", strings.ToLower(topic))

	b.WriteString("\n## Glossary\n")
	b.WriteString("| Term | Definition (≤ 12 words) |\n")
	b.WriteString("|------|-------------------------|\n")
	if len(glossary) == 0 {
		b.WriteString("| No terms | Glossary terms not identified |\n")
	} else {
		for _, entry := range glossary {
			fmt.Fprintf(&b, "| %s | %s |\n", entry.Term, entry.Definition)
		}
	}

	return types.DigestResult{Status: types.DigestOK, Markdown: b.String()}
}

// topicEntry maps a topic name to the keywords that select it. Ordered:
// the first topic with any keyword present in title+abstract wins.
type topicEntry struct {
	topic    string
	keywords []string
}

var topicTable = []topicEntry{
	{"Quantum Error Correction", []string{"error correction", "quantum error", "surface code", "stabilizer"}},
	{"Quantum Computing", []string{"quantum computer", "quantum algorithm", "qubit", "quantum gate"}},
	{"Quantum Cryptography", []string{"quantum cryptography", "quantum key distribution", "qkd"}},
	{"Quantum Communication", []string{"quantum communication", "quantum network", "quantum internet"}},
	{"Quantum Sensing", []string{"quantum sensing", "quantum metrology", "magnetometry"}},
	{"Quantum Field Theory", []string{"quantum field theory", "qft", "field theory"}},
	{"Condensed Matter", []string{"condensed matter", "solid state", "many-body"}},
	{"Quantum Machine Learning", []string{"quantum machine learning", "qml", "quantum neural"}},
	{"Quantum Optics", []string{"quantum optics", "photonic", "optical quantum"}},
	{"Quantum Information", []string{"quantum information", "entanglement", "quantum state"}},
}

// identifyPrimaryTopic classifies the paper from title and abstract keywords.
func identifyPrimaryTopic(title, abstract string) string {
	text := strings.ToLower(title + " " + abstract)
	for _, entry := range topicTable {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.topic
			}
		}
	}
	return "Quantum Physics"
}

// equationPatterns match the common LaTeX display-math forms.
var equationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\$([^$]+)\$\$`),
	regexp.MustCompile(`\\\[([^\]]+)\\\]`),
	regexp.MustCompile(`(?s)\\begin\{equation\}(.*?)\\end\{equation\}`),
	regexp.MustCompile(`(?s)\\begin\{align\}(.*?)\\end\{align\}`),
}

// extractEquations returns up to three labeled equations, skipping trivial
// fragments.
func extractEquations(text string) []string {
	var equations []string
	for _, re := range equationPatterns {
		for _, m := range re.FindAllStringSubmatch(text, maxEquations) {
			cleaned := strings.TrimSpace(m[1])
			if len(cleaned) > 10 {
				equations = append(equations, fmt.Sprintf("Eq. %d: %s", len(equations)+1, cleaned))
			}
			if len(equations) >= maxEquations {
				return equations
			}
		}
	}
	return equations
}

// findingPatterns pull concluding sentences used to enrich the TL;DR.
var findingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`conclusions?[:.]?\s*([^.]*\.)`),
	regexp.MustCompile(`results?[:.]?\s*([^.]*\.)`),
	regexp.MustCompile(`we show(?:ed)?\s*([^.]*\.)`),
	regexp.MustCompile(`we demonstrate[d]?\s*([^.]*\.)`),
	regexp.MustCompile(`our findings\s*([^.]*\.)`),
}

// generateTLDR combines the abstract with up to two key findings from the
// full text, truncated to 120 words.
func generateTLDR(abstract, text string) string {
	lower := strings.ToLower(text)

	var findings []string
	for _, re := range findingPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, 2) {
			findings = append(findings, strings.TrimSpace(m[1]))
		}
	}

	tldr := abstract
	if len(findings) > 0 {
		if len(findings) > 2 {
			findings = findings[:2]
		}
		tldr += " " + strings.Join(findings, " ")
	}

	words := strings.Fields(tldr)
	if len(words) > maxTLDRWords {
		words = words[:maxTLDRWords]
	}
	return strings.Join(words, " ")
}

// contributionPatterns pull sentences that announce what the paper adds.
var contributionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`contributions?[:.]?\s*([^.]*\.)`),
	regexp.MustCompile(`we propose\s*([^.]*\.)`),
	regexp.MustCompile(`novel(?:ty)?\s*([^.]*\.)`),
	regexp.MustCompile(`key insights?\s*([^.]*\.)`),
	regexp.MustCompile(`main results?\s*([^.]*\.)`),
}

// extractContributions returns up to five contribution bullets, skipping
// trivially short matches.
func extractContributions(text string) []string {
	lower := strings.ToLower(text)

	var contributions []string
	for _, re := range contributionPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			sentence := strings.TrimSpace(m[1])
			if len(sentence) <= 20 {
				continue
			}
			contributions = append(contributions, "• "+capitalize(sentence))
			if len(contributions) >= maxContributions {
				return contributions
			}
		}
	}
	return contributions
}

// GlossaryEntry is one term/definition pair of the digest glossary.
type GlossaryEntry struct {
	Term       string
	Definition string
}

// glossaryVocabulary lists the technical terms whose definitions are
// searched for in the text, in lookup order.
var glossaryVocabulary = []string{
	"qubit", "superposition", "entanglement", "decoherence", "fidelity",
	"hamiltonian", "pauli", "bloch sphere", "quantum gate", "circuit depth",
	"ancilla", "syndrome", "stabilizer", "logical qubit", "error rate",
}

// extractGlossary looks for explicit definitions ("X is ...", "X refers
// to ...") of known technical terms and keeps those at most twelve words
// long, up to six terms.
func extractGlossary(text string) []GlossaryEntry {
	lower := strings.ToLower(text)

	var glossary []GlossaryEntry
	for _, term := range glossaryVocabulary {
		re := regexp.MustCompile(regexp.QuoteMeta(term) + `s?\s*(?:is|are|refers to|denotes)\s*([^.]*\.)`)
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		def := strings.TrimSpace(m[1])
		if len(strings.Fields(def)) > maxDefWords {
			continue
		}
		glossary = append(glossary, GlossaryEntry{Term: titleWords(term), Definition: def})
		if len(glossary) >= maxGlossaryTerms {
			break
		}
	}
	return glossary
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// titleWords uppercases the first letter of each space-separated word.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
