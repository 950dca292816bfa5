// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hunt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/pdiddy/paper-hunter/internal/httputil"
	"github.com/pdiddy/paper-hunter/pkg/types"
)

// semanticAPIBase is the Semantic Scholar graph endpoint. Declared as a var
// so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1"

const citationFields = "title,authors,year,url,abstract,citationCount,externalIds"

// SemanticScholarSource lists papers citing a given arXiv paper via the
// Semantic Scholar graph API. Responses are memoized for the lifetime of the
// process so the widened pass does not re-fetch lookups already answered
// during the narrow pass.
type SemanticScholarSource struct {
	Client    *http.Client
	UserAgent string
	APIKey    string
	limiter   *rate.Limiter
	cache     *gocache.Cache
}

// NewSemanticScholarSource creates a citation source. Unauthenticated
// clients are limited to one request per second.
func NewSemanticScholarSource(cfg types.HuntConfig) *SemanticScholarSource {
	return &SemanticScholarSource{
		Client:    &http.Client{Timeout: cfg.Timeout},
		UserAgent: cfg.UserAgent,
		APIKey:    cfg.SemanticScholarAPIKey,
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		cache:     gocache.New(15*time.Minute, 30*time.Minute),
	}
}

// Name returns the source identifier.
func (s *SemanticScholarSource) Name() string { return "semantic_scholar" }

// CitationsOf returns the raw citing-paper records for one arXiv ID.
func (s *SemanticScholarSource) CitationsOf(ctx context.Context, arxivID string) ([]CitingPaper, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(arxivID); ok {
			return cached.([]CitingPaper), nil
		}
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	url := fmt.Sprintf("%s/paper/arXiv:%s/citations?fields=%s", semanticAPIBase, arxivID, citationFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)
	if s.APIKey != "" {
		req.Header.Set("x-api-key", s.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var cr citationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}

	var citing []CitingPaper
	for _, entry := range cr.Data {
		paper := entry.CitingPaper
		c := CitingPaper{
			Title:         paper.Title,
			DOI:           paper.ExternalIDs.DOI,
			URL:           paper.URL,
			Abstract:      paper.Abstract,
			Year:          paper.Year,
			CitationCount: paper.CitationCount,
		}
		for _, a := range paper.Authors {
			name := a.Name
			if name == "" {
				name = "Unknown"
			}
			c.Authors = append(c.Authors, name)
		}
		citing = append(citing, c)
	}

	if s.cache != nil {
		s.cache.Set(arxivID, citing, gocache.DefaultExpiration)
	}
	return citing, nil
}

// Semantic Scholar API JSON structures.
type citationsResponse struct {
	Data []citationEntry `json:"data"`
}

type citationEntry struct {
	CitingPaper semanticPaper `json:"citingPaper"`
}

type semanticPaper struct {
	PaperID       string              `json:"paperId"`
	Title         string              `json:"title"`
	Abstract      string              `json:"abstract"`
	Year          int                 `json:"year"`
	URL           string              `json:"url"`
	CitationCount int                 `json:"citationCount"`
	Authors       []semanticAuthor    `json:"authors"`
	ExternalIDs   semanticExternalIDs `json:"externalIds"`
}

type semanticAuthor struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}

type semanticExternalIDs struct {
	DOI      string `json:"DOI"`
	ArXiv    string `json:"ArXiv"`
	CorpusID int    `json:"CorpusId"`
}
