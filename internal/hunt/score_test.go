package hunt

import (
	"testing"
	"time"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

var scoreNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func paperAgedDays(title string, days int) types.Paper {
	return types.Paper{
		Title:     title,
		Published: scoreNow.AddDate(0, 0, -days),
	}
}

func TestScoreBounds(t *testing.T) {
	keywords := []string{"quantum", "error", "correction", "surface", "code", "qubit"}
	papers := []types.Paper{
		paperAgedDays("Quantum error correction with surface code qubit arrays", 0),
		paperAgedDays("Unrelated paper about databases", 500),
		{Title: ""},
	}

	for _, p := range papers {
		got := Score(p, keywords, scoreNow)
		if got < 0 || got > 100 {
			t.Errorf("Score(%q) = %d, want within [0,100]", p.Title, got)
		}
	}
}

func TestScoreKeywordAccumulation(t *testing.T) {
	keywords := []string{"surface code", "logical qubit"}

	one := Score(paperAgedDays("A study of the surface code", 100), keywords, scoreNow)
	two := Score(paperAgedDays("Surface code thresholds for the logical qubit", 100), keywords, scoreNow)

	// 50 + 20 and 50 + 40, no recency bonus at 100 days.
	if one != 70 {
		t.Errorf("one keyword: score = %d, want 70", one)
	}
	if two != 90 {
		t.Errorf("two keywords: score = %d, want 90", two)
	}
}

func TestScoreMonotonicity(t *testing.T) {
	keywords := []string{"decoherence", "entanglement"}

	without := Score(paperAgedDays("A paper about decoherence", 50), keywords, scoreNow)
	with := Score(paperAgedDays("Decoherence and entanglement dynamics", 50), keywords, scoreNow)

	if with < without {
		t.Errorf("extra keyword match lowered score: %d < %d", with, without)
	}
}

func TestScoreRecencyTiers(t *testing.T) {
	keywords := []string{"qubit"}
	tests := []struct {
		name string
		days int
		want int
	}{
		{"under a week", 3, 90},
		{"under a month", 20, 80},
		{"older", 200, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(paperAgedDays("Qubit readout", tt.days), keywords, scoreNow)
			if got != tt.want {
				t.Errorf("Score(%d days old) = %d, want %d", tt.days, got, tt.want)
			}
		})
	}
}

func TestScoreClampsAt100(t *testing.T) {
	keywords := []string{"quantum", "error", "correction", "code"}
	got := Score(paperAgedDays("Quantum error correction code", 0), keywords, scoreNow)
	if got != 100 {
		t.Errorf("score = %d, want clamp at 100", got)
	}
}

func TestScoreMalformedDates(t *testing.T) {
	keywords := []string{"qubit"}

	// A zero date and a future date both clamp the age to zero, which earns
	// the full recency bonus rather than an error.
	zero := Score(types.Paper{Title: "Qubit control"}, keywords, scoreNow)
	future := Score(types.Paper{Title: "Qubit control", Published: scoreNow.AddDate(1, 0, 0)}, keywords, scoreNow)

	if zero != 90 {
		t.Errorf("zero date: score = %d, want 90", zero)
	}
	if future != 90 {
		t.Errorf("future date: score = %d, want 90", future)
	}
}

func TestCitationScore(t *testing.T) {
	tests := []struct {
		citations int
		want      int
	}{
		{0, 0},
		{3, 15},
		{20, 100},
		{1000, 100},
	}
	for _, tt := range tests {
		if got := citationScore(tt.citations); got != tt.want {
			t.Errorf("citationScore(%d) = %d, want %d", tt.citations, got, tt.want)
		}
	}
}

func TestMatchesKeywords(t *testing.T) {
	keywords := []string{"Surface Code", "qubit"}

	if !matchesKeywords("advances in SURFACE CODE decoding", keywords) {
		t.Error("case-insensitive match failed")
	}
	if matchesKeywords("classical error correcting schemes", keywords) {
		t.Error("unexpected match")
	}
	if matchesKeywords("anything at all", []string{"", "  "}) {
		t.Error("blank keywords must not match everything")
	}
}
