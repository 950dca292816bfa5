// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hunt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatTable writes the hunt output as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-10s  %-5s  %s\n",
		"Rank", "Title", "Authors", "Published", "Score", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 112))

	for i, p := range out.Papers {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		published := ""
		if !p.Published.IsZero() {
			published = p.Published.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-10s  %-5d  %s\n",
			i+1, title, formatAuthors(p.Authors), published, p.RelevanceScore, p.Source)
	}

	fmt.Fprintf(w, "\n%d papers", len(out.Papers))
	if out.Widened {
		fmt.Fprintf(w, " (widened window)")
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the ranked papers as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Papers)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
