// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

// absPageBase is the arXiv abstract page prefix. Declared as a var so tests
// can substitute an httptest server.
var absPageBase = "https://arxiv.org/abs/"

// AbsPageExtractor scrapes the title and abstract from the paper's arXiv
// abstract page. It yields less text than the PDF, but enough for the topic,
// TL;DR, and entity zones when the PDF cannot be parsed.
type AbsPageExtractor struct {
	Client    *http.Client
	UserAgent string
}

// Name returns the strategy identifier.
func (e *AbsPageExtractor) Name() string { return "arxiv_abs" }

// Extract fetches and scrapes the abstract page for papers with an arXiv ID.
func (e *AbsPageExtractor) Extract(ctx context.Context, paper types.Paper) (string, error) {
	if paper.ArxivID == "" {
		return "", fmt.Errorf("paper has no arXiv ID")
	}

	doc, err := e.fetch(ctx, absPageBase+paper.ArxivID)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(doc.Find("h1.title").Text())
	abstract := strings.TrimSpace(doc.Find("blockquote.abstract").Text())
	if abstract == "" {
		return "", fmt.Errorf("abstract page has no abstract block")
	}

	// The page prefixes these blocks with "Title:" / "Abstract:" labels.
	title = strings.TrimSpace(strings.TrimPrefix(title, "Title:"))
	abstract = strings.TrimSpace(strings.TrimPrefix(abstract, "Abstract:"))

	return title + "\n\n" + abstract + "\n", nil
}

func (e *AbsPageExtractor) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", e.UserAgent)

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("abstract page returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing abstract page: %w", err)
	}
	return doc, nil
}

// ReadabilityExtractor runs generic article extraction over the paper's
// landing page. Citation-source papers carry a landing-page URL rather than
// a direct PDF link, so this is usually their only workable strategy.
type ReadabilityExtractor struct {
	Client    *http.Client
	UserAgent string
}

// Name returns the strategy identifier.
func (e *ReadabilityExtractor) Name() string { return "readability" }

// Extract fetches the landing page and returns its readable text content.
func (e *ReadabilityExtractor) Extract(ctx context.Context, paper types.Paper) (string, error) {
	if paper.PDFURL == "" {
		return "", fmt.Errorf("paper has no URL")
	}

	pageURL, err := url.Parse(paper.PDFURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", paper.PDFURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, paper.PDFURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", e.UserAgent)

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", paper.PDFURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("landing page returned HTTP %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return "", fmt.Errorf("readability extraction: %w", err)
	}

	if strings.TrimSpace(article.TextContent) == "" {
		return "", fmt.Errorf("readability produced empty text")
	}
	return article.TextContent, nil
}
