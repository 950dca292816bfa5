// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest turns a ranked paper into a structured Markdown digest:
// document text extraction with a fallback chain, then zone-by-zone digest
// generation. See docs/ARCHITECTURE § Digest.
package digest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

// TextExtractor obtains plain text for one paper. Implementations absorb
// nothing: unreachable resources, unsupported formats, and empty content
// all surface as errors so the chain can move on.
type TextExtractor interface {
	Name() string
	Extract(ctx context.Context, paper types.Paper) (string, error)
}

// ExtractText tries each extractor in order and returns the first non-empty
// result. This is a plain fallback chain, not a state machine: a failed or
// empty extraction is logged to w and the next strategy runs. When every
// strategy fails the empty string is returned; the caller treats that as a
// degrade-gracefully condition, never a fatal error.
func ExtractText(ctx context.Context, extractors []TextExtractor, paper types.Paper, w io.Writer) string {
	for _, e := range extractors {
		text, err := e.Extract(ctx, paper)
		if err != nil {
			if w != nil {
				fmt.Fprintf(w, "warning: %s extraction failed: %v\n", e.Name(), err)
			}
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text
		}
	}
	return ""
}

// DefaultExtractors returns the standard chain: pdftotext over the
// downloaded PDF, then the arXiv abstract page, then generic readability
// extraction of the paper's landing page.
func DefaultExtractors(cfg types.DigestConfig) []TextExtractor {
	client := &http.Client{Timeout: cfg.Timeout}
	return []TextExtractor{
		NewPdftotextExtractor(cfg),
		&AbsPageExtractor{Client: client, UserAgent: cfg.UserAgent},
		&ReadabilityExtractor{Client: client, UserAgent: cfg.UserAgent},
	}
}

// PdftotextExtractor downloads the paper PDF and pipes it through the
// pdftotext binary.
type PdftotextExtractor struct {
	Client    *http.Client
	UserAgent string
	Binary    string
}

// NewPdftotextExtractor creates the extractor from digest settings.
func NewPdftotextExtractor(cfg types.DigestConfig) *PdftotextExtractor {
	binary := cfg.PdftotextPath
	if binary == "" {
		binary = "pdftotext"
	}
	return &PdftotextExtractor{
		Client:    &http.Client{Timeout: cfg.Timeout},
		UserAgent: cfg.UserAgent,
		Binary:    binary,
	}
}

// Name returns the strategy identifier.
func (e *PdftotextExtractor) Name() string { return "pdftotext" }

// Extract downloads the PDF to a temporary file and converts it to text.
func (e *PdftotextExtractor) Extract(ctx context.Context, paper types.Paper) (string, error) {
	if paper.PDFURL == "" {
		return "", fmt.Errorf("paper has no PDF URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, paper.PDFURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", e.UserAgent)

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading PDF: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("PDF download returned HTTP %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "paper-hunter-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	tmp.Close()

	// "-" sends the text to stdout.
	out, err := exec.CommandContext(ctx, e.Binary, tmp.Name(), "-").Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", e.Binary, err)
	}

	text := string(out)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s produced empty output", e.Binary)
	}
	return text, nil
}
