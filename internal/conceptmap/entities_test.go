package conceptmap

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeEntity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"the quantum error correction system", "Quantum Error Correction System"},
		{"surface code", "Surface Code"},
		{"SURFACE CODE", "Surface Code"},
		{"  decoherence  ", "Decoherence"},
		{"a state of the art", "State Art"},
		{"many-body localization", "Many-Body Localization"},
		{"", ""},
		{"the of and", ""},
	}
	for _, tt := range tests {
		if got := NormalizeEntity(tt.in); got != tt.want {
			t.Errorf("NormalizeEntity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeEntityIdempotent(t *testing.T) {
	inputs := []string{
		"the quantum error correction system",
		"Surface Code",
		"many-body localization",
		"Qubit",
	}
	for _, in := range inputs {
		once := NormalizeEntity(in)
		twice := NormalizeEntity(once)
		if once != twice {
			t.Errorf("NormalizeEntity not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestEntitySetInsertionOrder(t *testing.T) {
	s := NewEntitySet()
	s.Add("Surface Code")
	s.Add("Decoherence")
	s.Add("Surface Code") // duplicate
	s.Add("")             // empty
	s.Add("Entanglement")

	want := []string{"Surface Code", "Decoherence", "Entanglement"}
	if got := s.Entities(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entities() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if !s.Has("Decoherence") || s.Has("Qubit") {
		t.Error("Has() misreports membership")
	}
}

const sampleDigest = `# Quantum Error Correction with Surface Codes

| Field | Value |
|-------|-------|
| Authors | Alice Example |
| Published | 2026-03-14 |
| Primary Topic | Quantum Error Correction |

## TL;DR (≤ 120 words)
We show that the surface code protects a logical qubit against decoherence.

## Main Contributions
• Demonstrated syndrome measurement at scale
• Improved decoding of the stabilizer code

## Critical Assessment
Solid experimental work.

## Glossary

| Term | Definition |
|------|------------|
| Surface Code | A topological stabilizer code |
| Logical Qubit | An encoded qubit |
`

func TestExtractEntitiesZones(t *testing.T) {
	entities := ExtractEntities(sampleDigest)

	for _, want := range []string{
		"Quantum Error Correction", // title vocabulary + Primary Topic field
		"Surface Code",             // TL;DR vocabulary + glossary term
		"Logical Qubit",            // TL;DR vocabulary + glossary term
		"Decoherence",              // TL;DR vocabulary
		"Syndrome Measurement",     // contributions vocabulary
		"Stabilizer Code",          // contributions vocabulary
	} {
		if !entities.Has(want) {
			t.Errorf("missing entity %q in %v", want, entities.Entities())
		}
	}

	// Glossary header and table separators never become entities.
	if entities.Has("Term") {
		t.Error("glossary header leaked into the entity set")
	}
}

func TestExtractEntitiesGlossaryPlaceholder(t *testing.T) {
	digest := "# A Paper\n\n## Glossary\n\n| Term | Definition |\n|------|------|\n| No terms | Glossary terms not identified |\n"
	entities := ExtractEntities(digest)

	for _, e := range entities.Entities() {
		if strings.Contains(e, "No Terms") || strings.Contains(e, "Terms Not Identified") {
			t.Errorf("placeholder row leaked into the entity set: %q", e)
		}
	}
}

func TestExtractEntitiesMissingZones(t *testing.T) {
	entities := ExtractEntities("plain prose with no markdown structure at all")
	if entities.Len() != 0 {
		t.Errorf("entities = %v, want none from unstructured text", entities.Entities())
	}
}

func TestAddKeyPhrasesCapitalizedSequences(t *testing.T) {
	s := NewEntitySet()
	addKeyPhrases(s, "The Variational Quantum Eigensolver outperforms classical baselines, "+
		"but Very Long Capitalized Phrase Names Here are ignored.")

	if !s.Has("Variational Quantum Eigensolver") {
		t.Errorf("capitalized sequence missing from %v", s.Entities())
	}
	for _, e := range s.Entities() {
		if len(strings.Fields(e)) > 4 {
			t.Errorf("sequence longer than four words kept: %q", e)
		}
	}
}

func TestAddKeyPhrasesDomainVocabulary(t *testing.T) {
	s := NewEntitySet()
	addKeyPhrases(s, "we study quantum error correction and entanglement in noisy systems")

	for _, want := range []string{"Quantum Error Correction", "Error Correction", "Entanglement"} {
		if !s.Has(want) {
			t.Errorf("missing vocabulary entity %q in %v", want, s.Entities())
		}
	}
}
