// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hunt retrieves recent papers matching user keywords from a primary
// source and a citation source, scores them, and returns a ranked,
// deduplicated list. See docs/ARCHITECTURE § Hunt.
package hunt

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

// PrimarySource searches one topic category of a freshly-published-papers
// provider (arXiv). Transport errors surface as ordinary errors; the hunt
// absorbs them per category.
type PrimarySource interface {
	Name() string
	Search(ctx context.Context, category string, maxResults int) ([]types.Paper, error)
}

// CitingPaper is one raw record returned by the citation source.
type CitingPaper struct {
	Title         string
	Authors       []string
	DOI           string
	URL           string
	Abstract      string
	Year          int
	CitationCount int
}

// CitationSource lists papers citing a given primary-source paper.
type CitationSource interface {
	Name() string
	CitationsOf(ctx context.Context, arxivID string) ([]CitingPaper, error)
}

// Output holds the ranked papers and statistics from one hunt.
type Output struct {
	Papers   []types.Paper
	Widened  bool
	Warnings []string
}

// Hunt runs the full retrieval pipeline: a primary-source pass over every
// configured category, a citation-source pass seeded by the primary hits,
// merge and dedup, and — when fewer than cfg.MinResults papers survive — a
// single retry with widened lookback windows that REPLACES the narrow pass's
// output entirely. The result is truncated to maxPapers, preserving the
// score-descending order from Dedupe.
//
// An empty keyword set is caller misuse and fails fast; it must not silently
// match everything. Collaborator failures (one category, one citation
// lookup, or a missing source altogether) degrade to fewer candidates with a
// warning on w, never an error.
func Hunt(ctx context.Context, keywords []string, maxPapers int, cfg types.HuntConfig, primary PrimarySource, citations CitationSource, w io.Writer) (Output, error) {
	if !hasKeywords(keywords) {
		return Output{}, fmt.Errorf("keyword set is empty: provide at least one match phrase")
	}

	h := &hunter{
		keywords:  keywords,
		cfg:       cfg,
		primary:   primary,
		citations: citations,
		now:       time.Now(),
		w:         w,
	}

	papers := h.pass(ctx, cfg.LookbackDays, cfg.CitationLookbackDays)

	out := Output{}
	if len(papers) < cfg.MinResults {
		h.warnf("expanding search window to %d days", cfg.WidenedLookbackDays)
		papers = h.pass(ctx, cfg.WidenedLookbackDays, cfg.WidenedCitationDays)
		out.Widened = true
	}

	if maxPapers > 0 && len(papers) > maxPapers {
		papers = papers[:maxPapers]
	}

	out.Papers = papers
	out.Warnings = h.warnings
	return out, nil
}

// hunter carries the per-invocation state shared by both passes. The clock
// is captured once so the narrow and widened passes filter against the same
// cutoffs.
type hunter struct {
	keywords  []string
	cfg       types.HuntConfig
	primary   PrimarySource
	citations CitationSource
	now       time.Time
	w         io.Writer
	warnings  []string
}

// pass runs one fetch-filter-score-merge-dedupe cycle with the given windows.
func (h *hunter) pass(ctx context.Context, lookbackDays, citationDays int) []types.Paper {
	primaryHits := h.searchPrimary(ctx, lookbackDays)
	citing := h.searchCitations(ctx, primaryHits, citationDays)
	return Dedupe(append(primaryHits, citing...))
}

// searchPrimary queries every configured category and filters candidates by
// publication date, keyword presence, and abstract length. A failed category
// is logged and skipped; a nil primary source degrades to zero candidates so
// the citation pass and dedup still run on empty input.
func (h *hunter) searchPrimary(ctx context.Context, lookbackDays int) []types.Paper {
	if h.primary == nil {
		h.warnf("no primary source configured")
		return nil
	}

	cutoff := h.now.AddDate(0, 0, -lookbackDays)
	var found []types.Paper

	for _, category := range h.cfg.Categories {
		records, err := h.primary.Search(ctx, category, h.cfg.MaxPerCategory)
		if err != nil {
			h.warnf("category %s: %v", category, err)
			continue
		}

		for _, p := range records {
			if p.Published.Before(cutoff) {
				continue
			}
			if !matchesKeywords(p.Title+" "+p.Abstract, h.keywords) {
				continue
			}
			if len(strings.Fields(p.Abstract)) < h.cfg.MinAbstractWords {
				continue
			}
			p.RelevanceScore = Score(p, h.keywords, h.now)
			found = append(found, p)
		}
	}
	return found
}

// searchCitations looks up papers citing each primary hit and filters them by
// completeness, year, and keyword presence. The year cutoff compares calendar
// years only: a day-granularity window of 10 days admits any citing paper
// from the cutoff year. Citing papers are scored by citation traction alone.
func (h *hunter) searchCitations(ctx context.Context, seeds []types.Paper, citationDays int) []types.Paper {
	if h.citations == nil {
		return nil
	}

	cutoffYear := h.now.AddDate(0, 0, -citationDays).Year()
	var found []types.Paper

	for _, seed := range seeds {
		if seed.ArxivID == "" {
			continue
		}

		records, err := h.citations.CitationsOf(ctx, seed.ArxivID)
		if err != nil {
			h.warnf("citations of %s: %v", seed.ArxivID, err)
			continue
		}

		for _, c := range records {
			if c.Title == "" || c.Abstract == "" {
				continue
			}
			if c.Year > 0 && c.Year < cutoffYear {
				continue
			}
			if !matchesKeywords(c.Title+" "+c.Abstract, h.keywords) {
				continue
			}

			p := types.Paper{
				Title:          c.Title,
				Authors:        c.Authors,
				DOI:            c.DOI,
				PDFURL:         c.URL,
				Abstract:       c.Abstract,
				RelevanceScore: citationScore(c.CitationCount),
				Source:         h.citations.Name(),
			}
			if c.Year > 0 {
				p.Published = time.Date(c.Year, 1, 1, 0, 0, 0, 0, time.UTC)
			}
			found = append(found, p)
		}
	}
	return found
}

func (h *hunter) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	h.warnings = append(h.warnings, msg)
	if h.w != nil {
		fmt.Fprintf(h.w, "warning: %s\n", msg)
	}
}

// hasKeywords reports whether at least one keyword is non-blank.
func hasKeywords(keywords []string) bool {
	for _, kw := range keywords {
		if strings.TrimSpace(kw) != "" {
			return true
		}
	}
	return false
}
