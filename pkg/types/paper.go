// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-hunter pipeline.
// See docs/ARCHITECTURE.md § Pipeline Interface, § Data Structures.
package types

import "time"

// Paper represents one retrieved work, scored and ready for ranking.
type Paper struct {
	// Title is the paper title as returned by the source. Never empty for
	// papers that survive filtering.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// ArxivID is the primary-source identifier (e.g. "2301.07041"), unique
	// within arXiv. Empty for papers found only through the citation source.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// DOI is the cross-source identifier, unique globally when present.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Published is the publication or preprint date. Citation-source papers
	// carry only a year; their date is January 1 of that year.
	Published time.Time `json:"published" yaml:"published"`

	// PDFURL is the URL of the article PDF, when the source provides one.
	PDFURL string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`

	// Abstract is the paper abstract or summary.
	Abstract string `json:"abstract" yaml:"abstract"`

	// RelevanceScore is an integer between 0 and 100. Primary-source papers
	// are scored from keyword and recency signals; citation-source papers
	// from citation traction.
	RelevanceScore int `json:"relevance_score" yaml:"relevance_score"`

	// Source identifies which backend found this paper
	// (e.g. "arxiv", "semantic_scholar").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// HasIdentifier reports whether the paper carries at least one identifier.
// A paper with neither an arXiv ID nor a DOI can never be deduplicated
// against anything and is always kept.
func (p Paper) HasIdentifier() bool {
	return p.ArxivID != "" || p.DOI != ""
}
