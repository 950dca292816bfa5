// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hunter/internal/digest"
	"github.com/pdiddy/paper-hunter/internal/hunt"
	"github.com/pdiddy/paper-hunter/pkg/types"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Generate a Markdown digest for each paper of a saved hunt",
	Long: `Digest reads the papers of a saved hunt file, extracts the document text of
each paper (PDF first, HTML fallbacks after), and writes one structured
Markdown digest per paper to the digest output directory. Papers whose text
cannot be extracted are reported and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		huntPath, _ := cmd.Flags().GetString("hunt")
		if huntPath == "" {
			return fmt.Errorf("--hunt is required: point it at a file written by 'hunt --save'")
		}

		hf, err := hunt.ReadHuntFile(huntPath)
		if err != nil {
			return err
		}
		if len(hf.Papers) == 0 {
			return fmt.Errorf("hunt file %s contains no papers", huntPath)
		}

		cfg := pipelineConfig().Digest
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		extractors := digest.DefaultExtractors(cfg)

		failed := 0
		for i, paper := range hf.Papers {
			slug := paperSlug(paper, i)
			result := digest.Create(cmd.Context(), extractors, paper, os.Stderr)
			if !result.OK() {
				fmt.Fprintf(os.Stdout, "failed  %s: %s\n", slug, result.Reason)
				failed++
				continue
			}

			outPath := filepath.Join(cfg.OutputDir, slug+".md")
			if err := os.WriteFile(outPath, []byte(result.Markdown), 0o644); err != nil {
				return fmt.Errorf("writing digest %s: %w", outPath, err)
			}
			fmt.Fprintf(os.Stdout, "written %s\n", outPath)
		}

		if failed > 0 {
			fmt.Fprintf(os.Stdout, "\n%d of %d papers could not be digested\n", failed, len(hf.Papers))
		}
		return nil
	},
}

// paperSlug derives a filesystem-safe name for one paper: the arXiv ID when
// present, a sanitized DOI otherwise, an index-based name as a last resort.
func paperSlug(p types.Paper, index int) string {
	if p.ArxivID != "" {
		return p.ArxivID
	}
	if p.DOI != "" {
		s := strings.NewReplacer("/", "_", ":", "_", " ", "_").Replace(p.DOI)
		return "doi-" + s
	}
	return fmt.Sprintf("paper-%03d", index+1)
}

func init() {
	digestCmd.Flags().String("hunt", "", "saved hunt file to read papers from")

	rootCmd.AddCommand(digestCmd)
}
