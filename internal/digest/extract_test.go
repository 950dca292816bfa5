package digest

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

type staticExtractor struct {
	name string
	text string
	err  error
}

func (e staticExtractor) Name() string { return e.name }

func (e staticExtractor) Extract(context.Context, types.Paper) (string, error) {
	return e.text, e.err
}

func TestExtractTextFirstNonEmptyWins(t *testing.T) {
	chain := []TextExtractor{
		staticExtractor{name: "broken", err: fmt.Errorf("unreachable")},
		staticExtractor{name: "empty", text: "   \n"},
		staticExtractor{name: "good", text: "document text"},
		staticExtractor{name: "never-reached", text: "other text"},
	}

	var log bytes.Buffer
	got := ExtractText(context.Background(), chain, testPaper, &log)

	if got != "document text" {
		t.Errorf("text = %q", got)
	}
	if !strings.Contains(log.String(), "broken extraction failed") {
		t.Errorf("missing failure warning in %q", log.String())
	}
}

func TestExtractTextAllFail(t *testing.T) {
	chain := []TextExtractor{
		staticExtractor{name: "a", err: fmt.Errorf("no")},
		staticExtractor{name: "b", text: ""},
	}

	if got := ExtractText(context.Background(), chain, testPaper, nil); got != "" {
		t.Errorf("text = %q, want empty when every strategy fails", got)
	}
}

func TestDefaultExtractorsOrder(t *testing.T) {
	chain := DefaultExtractors(types.DefaultDigestConfig())
	if len(chain) != 3 {
		t.Fatalf("len = %d, want 3", len(chain))
	}
	for i, want := range []string{"pdftotext", "arxiv_abs", "readability"} {
		if chain[i].Name() != want {
			t.Errorf("chain[%d] = %s, want %s", i, chain[i].Name(), want)
		}
	}
}

func TestAbsPageExtractor(t *testing.T) {
	page := `<html><body>
<h1 class="title">Title:
Surface Code Decoding</h1>
<blockquote class="abstract">Abstract:  We study decoding strategies.</blockquote>
</body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2301.07041" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(page))
	}))
	defer ts.Close()

	saved := absPageBase
	absPageBase = ts.URL + "/"
	defer func() { absPageBase = saved }()

	e := &AbsPageExtractor{Client: ts.Client(), UserAgent: "paper-hunter-test"}
	text, err := e.Extract(context.Background(), testPaper)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(text, "Surface Code Decoding") {
		t.Errorf("text missing title: %q", text)
	}
	if !strings.Contains(text, "We study decoding strategies.") {
		t.Errorf("text missing abstract: %q", text)
	}
	if strings.Contains(text, "Title:") || strings.Contains(text, "Abstract:") {
		t.Errorf("page labels not stripped: %q", text)
	}
}

func TestAbsPageExtractorNoAbstractBlock(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body><p>not an abstract page</p></body></html>"))
	}))
	defer ts.Close()

	saved := absPageBase
	absPageBase = ts.URL + "/"
	defer func() { absPageBase = saved }()

	e := &AbsPageExtractor{Client: ts.Client()}
	if _, err := e.Extract(context.Background(), testPaper); err == nil {
		t.Error("expected error for page without abstract block")
	}
}

func TestAbsPageExtractorRequiresArxivID(t *testing.T) {
	p := testPaper
	p.ArxivID = ""

	e := &AbsPageExtractor{Client: http.DefaultClient}
	if _, err := e.Extract(context.Background(), p); err == nil {
		t.Error("expected error for paper without arXiv ID")
	}
}

func TestReadabilityExtractor(t *testing.T) {
	page := `<html><head><title>Paper Landing Page</title></head><body>
<article>
<h1>Surface Code Decoding</h1>
<p>We study decoding strategies for topological codes under realistic noise.
The decoder runs in linear time and tolerates measurement errors. This long
paragraph exists so the readability heuristics treat it as article content
rather than boilerplate navigation.</p>
</article>
</body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(page))
	}))
	defer ts.Close()

	p := testPaper
	p.PDFURL = ts.URL + "/paper"

	e := &ReadabilityExtractor{Client: ts.Client(), UserAgent: "paper-hunter-test"}
	text, err := e.Extract(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "decoding strategies for topological codes") {
		t.Errorf("text = %q", text)
	}
}

func TestReadabilityExtractorHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	p := testPaper
	p.PDFURL = ts.URL

	e := &ReadabilityExtractor{Client: ts.Client()}
	if _, err := e.Extract(context.Background(), p); err == nil {
		t.Error("expected error for non-200 landing page")
	}
}

func TestPdftotextExtractorRequiresPDFURL(t *testing.T) {
	p := testPaper
	p.PDFURL = ""

	e := &PdftotextExtractor{Client: http.DefaultClient, Binary: "pdftotext"}
	if _, err := e.Extract(context.Background(), p); err == nil {
		t.Error("expected error for paper without PDF URL")
	}
}

func TestPdftotextExtractorMissingBinary(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer ts.Close()

	p := testPaper
	p.PDFURL = ts.URL + "/paper.pdf"

	e := &PdftotextExtractor{Client: ts.Client(), Binary: "/nonexistent/pdftotext"}
	if _, err := e.Extract(context.Background(), p); err == nil {
		t.Error("expected error when the conversion binary is missing")
	}
}
