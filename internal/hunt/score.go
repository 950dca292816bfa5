// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hunt

import (
	"strings"
	"time"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

// Scoring constants for primary-source papers.
const (
	baseScore         = 50
	titleKeywordBonus = 20
	freshBonus        = 20 // published within the last week
	recentBonus       = 10 // published within the last month
	maxScore          = 100
)

// Score rates a paper between 0 and 100 against the caller's keywords.
// Every keyword found in the title (case-insensitive substring) adds 20;
// accumulation across multiple hits is intentional, so a title matching
// three keywords outranks one matching a single keyword. A recency bonus
// rewards papers under 7 or 30 days old, measured against now. Missing or
// future publication dates clamp the age to zero rather than failing.
func Score(p types.Paper, keywords []string, now time.Time) int {
	score := baseScore

	title := strings.ToLower(p.Title)
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(title, strings.ToLower(kw)) {
			score += titleKeywordBonus
		}
	}

	switch days := ageDays(p.Published, now); {
	case days < 7:
		score += freshBonus
	case days < 30:
		score += recentBonus
	}

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// ageDays returns the paper age in whole days, clamped to zero for zero or
// future dates.
func ageDays(published, now time.Time) int {
	if published.IsZero() {
		return 0
	}
	age := now.Sub(published)
	if age < 0 {
		return 0
	}
	return int(age.Hours() / 24)
}

// citationScore rates a citation-source paper from its citation count alone:
// min(count*5, 100). Citation traction substitutes for the title and recency
// signals used for primary-source papers, which have no comparable weight here.
func citationScore(citationCount int) int {
	score := citationCount * 5
	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// matchesKeywords reports whether any keyword appears in text as a
// case-insensitive substring.
func matchesKeywords(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
