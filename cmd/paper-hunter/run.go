// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hunter/internal/conceptmap"
	"github.com/pdiddy/paper-hunter/internal/digest"
	"github.com/pdiddy/paper-hunter/internal/hunt"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: hunt, digest, map",
	Long: `Run chains all three stages: hunt for papers matching the keyword set,
generate a digest per paper, and derive a concept map per digest. Digests
and maps land in their configured output directories; the ranked paper list
is saved alongside them. Papers whose text cannot be extracted get no map.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keywords, err := resolveKeywords(cmd)
		if err != nil {
			return err
		}
		maxPapers, _ := cmd.Flags().GetInt("max-papers")

		cfg := pipelineConfig()
		primary := hunt.NewArxivSource(cfg.Hunt)
		citations := hunt.NewSemanticScholarSource(cfg.Hunt)

		out, err := hunt.Hunt(cmd.Context(), keywords, maxPapers, cfg.Hunt, primary, citations, os.Stderr)
		if err != nil {
			return err
		}
		if len(out.Papers) == 0 {
			fmt.Fprintln(os.Stdout, "No papers found matching criteria.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "Found %d papers\n", len(out.Papers))

		for _, dir := range []string{cfg.Digest.OutputDir, cfg.Graph.OutputDir} {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
		}

		huntPath := filepath.Join(cfg.Digest.OutputDir, "..", "hunt.yaml")
		if err := hunt.WriteHuntFile(huntPath, keywords, maxPapers, cfg.Hunt, out); err != nil {
			return err
		}

		extractors := digest.DefaultExtractors(cfg.Digest)

		for i, paper := range out.Papers {
			slug := paperSlug(paper, i)
			fmt.Fprintf(os.Stdout, "[%d/%d] %s\n", i+1, len(out.Papers), paper.Title)

			result := digest.Create(cmd.Context(), extractors, paper, os.Stderr)
			if !result.OK() {
				// No digest means no concept map for this paper.
				fmt.Fprintf(os.Stdout, "  digest failed: %s\n", result.Reason)
				continue
			}

			digestPath := filepath.Join(cfg.Digest.OutputDir, slug+".md")
			if err := os.WriteFile(digestPath, []byte(result.Markdown), 0o644); err != nil {
				return fmt.Errorf("writing digest %s: %w", digestPath, err)
			}

			graph := conceptmap.Map(result.Markdown, cfg.Graph)
			mapPath := filepath.Join(cfg.Graph.OutputDir, slug+".mmd")
			if err := os.WriteFile(mapPath, []byte(conceptmap.RenderMermaid(graph)+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing map %s: %w", mapPath, err)
			}

			fmt.Fprintf(os.Stdout, "  digest %s, map %s (%d nodes, %d edges)\n",
				digestPath, mapPath, len(graph.Nodes), len(graph.Edges))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().String("keywords", "", "comma-separated match phrases")
	runCmd.Flags().String("keywords-file", "", "YAML file with a keywords list")
	runCmd.Flags().Int("max-papers", 10, "maximum number of papers to process")

	rootCmd.AddCommand(runCmd)
}
