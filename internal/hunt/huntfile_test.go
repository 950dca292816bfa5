package hunt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

func TestHuntFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunt.yaml")

	out := Output{
		Papers: []types.Paper{
			{
				Title:          "Surface code decoding",
				Authors:        []string{"Alice Example"},
				ArxivID:        "2301.07041",
				DOI:            "10.1103/x",
				Published:      time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
				Abstract:       "We study decoding.",
				RelevanceScore: 90,
				Source:         "arxiv",
			},
		},
		Widened:  true,
		Warnings: []string{"category hep-th: timeout"},
	}
	kws := []string{"surface code", "decoding"}

	if err := WriteHuntFile(path, kws, 10, types.DefaultHuntConfig(), out); err != nil {
		t.Fatal(err)
	}

	hf, err := ReadHuntFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(hf.Keywords) != 2 || hf.Keywords[0] != "surface code" {
		t.Errorf("Keywords = %v", hf.Keywords)
	}
	if hf.Config.MaxPapers != 10 || !hf.Config.Widened {
		t.Errorf("Config = %+v", hf.Config)
	}
	if len(hf.Papers) != 1 {
		t.Fatalf("Papers len = %d, want 1", len(hf.Papers))
	}
	p := hf.Papers[0]
	if p.ArxivID != "2301.07041" || p.RelevanceScore != 90 {
		t.Errorf("paper round-trip lost fields: %+v", p)
	}
	if !p.Published.Equal(out.Papers[0].Published) {
		t.Errorf("Published = %v", p.Published)
	}
	if hf.Summary.Total != 1 || len(hf.Summary.Warnings) != 1 {
		t.Errorf("Summary = %+v", hf.Summary)
	}
	if hf.Summary.Timestamp.IsZero() {
		t.Error("Summary.Timestamp not set")
	}
}

func TestLoadKeywords(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("keywords:\n  - surface code\n  - qubit\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	kws, err := LoadKeywords(good)
	if err != nil {
		t.Fatal(err)
	}
	if len(kws) != 2 || kws[1] != "qubit" {
		t.Errorf("keywords = %v", kws)
	}
}

func TestLoadKeywordsRejectsEmptySet(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"no keywords key", "papers: []\n"},
		{"empty list", "keywords: []\n"},
		{"blank entries", "keywords:\n  - \"\"\n  - \"   \"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "-")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadKeywords(path); err == nil {
				t.Error("expected error for keyword-less file")
			}
		})
	}
}

func TestReadHuntFileErrors(t *testing.T) {
	if _, err := ReadHuntFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("keywords: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadHuntFile(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
