package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-hunter/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// HuntConfig holds settings for the retrieval stage. The zero value is not
// usable; call DefaultHuntConfig and override fields as needed.
type HuntConfig struct {
	HTTPConfig `yaml:",inline"`

	// Categories are the arXiv topic categories queried on every hunt,
	// independent of the caller's keywords.
	Categories []string `json:"categories" yaml:"categories"`

	// LookbackDays is the primary-source time window for the first pass.
	LookbackDays int `json:"lookback_days" yaml:"lookback_days"`

	// CitationLookbackDays is the citation-source time window for the first pass.
	CitationLookbackDays int `json:"citation_lookback_days" yaml:"citation_lookback_days"`

	// WidenedLookbackDays replaces LookbackDays when the first pass yields
	// fewer than MinResults papers.
	WidenedLookbackDays int `json:"widened_lookback_days" yaml:"widened_lookback_days"`

	// WidenedCitationDays replaces CitationLookbackDays on the widened pass.
	WidenedCitationDays int `json:"widened_citation_days" yaml:"widened_citation_days"`

	// MinResults is the deduplicated count below which the hunt widens its
	// windows and retries once.
	MinResults int `json:"min_results" yaml:"min_results"`

	// MinAbstractWords filters out short abstracts. A proxy for "substantial
	// paper", not a page count.
	MinAbstractWords int `json:"min_abstract_words" yaml:"min_abstract_words"`

	// MaxPerCategory caps the number of records requested per category query.
	MaxPerCategory int `json:"max_per_category" yaml:"max_per_category"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`
}

// DefaultHuntConfig returns the hunt settings used when the config file
// does not override them.
func DefaultHuntConfig() HuntConfig {
	return HuntConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "paper-hunter/0.1",
		},
		Categories:           []string{"quant-ph", "hep-th", "cond-mat", "cs.QC"},
		LookbackDays:         1,
		CitationLookbackDays: 10,
		WidenedLookbackDays:  14,
		WidenedCitationDays:  17,
		MinResults:           3,
		MinAbstractWords:     150,
		MaxPerCategory:       50,
	}
}

// DigestConfig holds settings for the digest stage.
type DigestConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutputDir is the directory for generated digests (e.g. "output/digests/").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// PdftotextPath is the pdftotext binary used for PDF text extraction.
	// Empty means "pdftotext" resolved from PATH.
	PdftotextPath string `json:"pdftotext_path,omitempty" yaml:"pdftotext_path,omitempty"`
}

// DefaultDigestConfig returns the digest settings used when the config file
// does not override them.
func DefaultDigestConfig() DigestConfig {
	return DigestConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "paper-hunter/0.1",
		},
		OutputDir: "output/digests",
	}
}

// GraphConfig holds settings for the concept map stage.
type GraphConfig struct {
	// MaxNodes caps the number of nodes in a concept graph (default 20).
	MaxNodes int `json:"max_nodes" yaml:"max_nodes"`

	// MaxEdges caps the number of edges in a concept graph (default 30).
	MaxEdges int `json:"max_edges" yaml:"max_edges"`

	// OutputDir is the directory for rendered maps (e.g. "output/maps/").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// DefaultGraphConfig returns the concept map settings used when the config
// file does not override them.
func DefaultGraphConfig() GraphConfig {
	return GraphConfig{
		MaxNodes:  20,
		MaxEdges:  30,
		OutputDir: "output/maps",
	}
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Hunt   HuntConfig   `json:"hunt" yaml:"hunt"`
	Digest DigestConfig `json:"digest" yaml:"digest"`
	Graph  GraphConfig  `json:"graph" yaml:"graph"`
}
