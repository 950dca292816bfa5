// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hunter/internal/hunt"
)

// defaultKeywords are used when neither --keywords nor --keywords-file is
// given.
var defaultKeywords = []string{
	"quantum error correction",
	"surface code",
	"logical qubit",
	"quantum computing",
	"decoherence",
	"entanglement",
	"quantum algorithm",
	"quantum machine learning",
}

var huntCmd = &cobra.Command{
	Use:   "hunt",
	Short: "Find the most relevant newly published papers",
	Long: `Hunt queries arXiv category feeds and the Semantic Scholar citation graph
for papers matching the keyword set, scores them, removes duplicates, and
prints a ranked list. When too few papers survive filtering, the search
window widens automatically and the hunt runs once more.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keywords, err := resolveKeywords(cmd)
		if err != nil {
			return err
		}

		maxPapers, _ := cmd.Flags().GetInt("max-papers")
		asJSON, _ := cmd.Flags().GetBool("json")
		savePath, _ := cmd.Flags().GetString("save")

		cfg := pipelineConfig().Hunt
		primary := hunt.NewArxivSource(cfg)
		citations := hunt.NewSemanticScholarSource(cfg)

		out, err := hunt.Hunt(cmd.Context(), keywords, maxPapers, cfg, primary, citations, os.Stderr)
		if err != nil {
			return err
		}

		if asJSON {
			if err := hunt.FormatJSON(out, os.Stdout); err != nil {
				return err
			}
		} else {
			hunt.FormatTable(out, os.Stdout)
		}

		if savePath != "" {
			if err := hunt.WriteHuntFile(savePath, keywords, maxPapers, cfg, out); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved hunt to %s\n", savePath)
		}
		return nil
	},
}

// resolveKeywords picks the keyword set: explicit --keywords, then
// --keywords-file, then the built-in defaults.
func resolveKeywords(cmd *cobra.Command) ([]string, error) {
	raw, _ := cmd.Flags().GetString("keywords")
	if raw != "" {
		var keywords []string
		for _, kw := range strings.Split(raw, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("--keywords contains no usable phrases")
		}
		return keywords, nil
	}

	path, _ := cmd.Flags().GetString("keywords-file")
	if path != "" {
		return hunt.LoadKeywords(path)
	}

	return defaultKeywords, nil
}

func init() {
	huntCmd.Flags().String("keywords", "", "comma-separated match phrases")
	huntCmd.Flags().String("keywords-file", "", "YAML file with a keywords list")
	huntCmd.Flags().Int("max-papers", 10, "maximum number of papers to return")
	huntCmd.Flags().Bool("json", false, "output papers as JSON")
	huntCmd.Flags().String("save", "", "save the hunt (keywords + results) to a YAML file")

	rootCmd.AddCommand(huntCmd)
}
