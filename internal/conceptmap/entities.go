// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package conceptmap derives a bounded concept graph from a paper digest:
// entity extraction, relation inference, and graph construction.
// See docs/ARCHITECTURE § Concept Map.
package conceptmap

import (
	"regexp"
	"strings"
	"unicode"
)

// Digest zone patterns. Each zone is scanned independently; a zone missing
// from the digest contributes nothing.
var (
	titleRe        = regexp.MustCompile(`(?m)^# (.+)$`)
	topicRe        = regexp.MustCompile(`\| Primary Topic \| (.+) \|`)
	tldrRe         = regexp.MustCompile(`(?s)## TL;DR.*?\n(.+?)(?:\n##|\n\||\z)`)
	contributionRe = regexp.MustCompile(`(?s)## Main Contributions\n(.+?)(?:\n##|\z)`)
	glossaryRowRe  = regexp.MustCompile(`\| ([^|]+) \| [^|]+ \|`)

	markdownMarkRe = regexp.MustCompile("[#*_`]")
	tableCellRe    = regexp.MustCompile(`\|[^|]*\|`)
	capitalizedRe  = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
)

// domainVocabulary is the fixed set of quantum-science terms recognized by
// key-phrase extraction regardless of capitalization.
var domainVocabulary = []string{
	"quantum computer", "quantum algorithm", "quantum gate", "quantum circuit",
	"quantum error correction", "error correction", "surface code", "logical qubit",
	"physical qubit", "quantum state", "superposition", "entanglement",
	"decoherence", "quantum noise", "fidelity", "syndrome measurement",
	"stabilizer code", "pauli operator", "hamiltonian", "quantum channel",
}

// stopWords are removed token-wise during entity normalization.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true,
}

// EntitySet is an insertion-ordered set of normalized entities. Iteration
// order is the order entities were first added, which keeps relation
// inference and node retention reproducible for a fixed digest.
type EntitySet struct {
	order []string
	seen  map[string]bool
}

// NewEntitySet returns an empty set.
func NewEntitySet() *EntitySet {
	return &EntitySet{seen: make(map[string]bool)}
}

// Add inserts a normalized entity, ignoring empties and duplicates.
func (s *EntitySet) Add(entity string) {
	if entity == "" || s.seen[entity] {
		return
	}
	s.seen[entity] = true
	s.order = append(s.order, entity)
}

// Has reports whether the set contains the normalized entity.
func (s *EntitySet) Has(entity string) bool { return s.seen[entity] }

// Entities returns the entities in insertion order. The caller must not
// mutate the returned slice.
func (s *EntitySet) Entities() []string { return s.order }

// Len returns the number of entities.
func (s *EntitySet) Len() int { return len(s.order) }

// ExtractEntities pulls normalized entities from the structural zones of a
// digest: the title line, the Primary Topic field, the TL;DR narrative, the
// Main Contributions list, and the term column of the glossary table.
func ExtractEntities(digest string) *EntitySet {
	entities := NewEntitySet()

	if m := titleRe.FindStringSubmatch(digest); m != nil {
		addKeyPhrases(entities, m[1])
	}

	if m := topicRe.FindStringSubmatch(digest); m != nil {
		entities.Add(NormalizeEntity(m[1]))
	}

	if m := tldrRe.FindStringSubmatch(digest); m != nil {
		addKeyPhrases(entities, m[1])
	}

	if m := contributionRe.FindStringSubmatch(digest); m != nil {
		addKeyPhrases(entities, m[1])
	}

	for _, term := range glossaryTerms(digest) {
		entities.Add(NormalizeEntity(term))
	}

	return entities
}

// glossaryTerms returns the term column of every glossary table row,
// excluding the header and the "no terms" placeholder.
func glossaryTerms(digest string) []string {
	idx := strings.Index(digest, "## Glossary")
	if idx < 0 {
		return nil
	}

	var terms []string
	for _, m := range glossaryRowRe.FindAllStringSubmatch(digest[idx:], -1) {
		term := strings.TrimSpace(m[1])
		if term == "Term" || term == "No terms" || strings.HasPrefix(term, "---") {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// addKeyPhrases runs key-phrase extraction over one zone of text and adds
// the results to the set. Two sources feed the same set: domain vocabulary
// terms present in the text, and capitalized multi-word sequences of at
// most four words.
func addKeyPhrases(entities *EntitySet, text string) {
	clean := markdownMarkRe.ReplaceAllString(text, "")
	clean = tableCellRe.ReplaceAllString(clean, "")

	lower := strings.ToLower(clean)
	for _, term := range domainVocabulary {
		if strings.Contains(lower, term) {
			entities.Add(NormalizeEntity(term))
		}
	}

	for _, phrase := range capitalizedRe.FindAllString(clean, -1) {
		if len(strings.Fields(phrase)) <= 4 {
			entities.Add(NormalizeEntity(phrase))
		}
	}
}

// NormalizeEntity converts a raw mention to its canonical form: trimmed,
// stop words removed token-wise, whitespace collapsed, title-cased. Two raw
// strings that normalize identically are the same entity; this is the sole
// notion of entity identity. Normalization is idempotent.
func NormalizeEntity(entity string) string {
	var kept []string
	for _, word := range strings.Fields(entity) {
		if stopWords[strings.ToLower(word)] {
			continue
		}
		kept = append(kept, word)
	}
	return titleCase(strings.Join(kept, " "))
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, treating any non-letter as a word boundary ("many-body" becomes
// "Many-Body").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
