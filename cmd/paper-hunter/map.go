// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hunter/internal/conceptmap"
)

var mapCmd = &cobra.Command{
	Use:   "map [digest.md ...]",
	Short: "Derive a concept map from generated digests",
	Long: `Map extracts entities and relations from one or more digest files and
renders each resulting concept graph as a mermaid diagram. With no
arguments, every digest in the digest output directory is mapped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig()

		paths := args
		if len(paths) == 0 {
			found, err := filepath.Glob(filepath.Join(cfg.Digest.OutputDir, "*.md"))
			if err != nil {
				return err
			}
			paths = found
		}
		if len(paths) == 0 {
			return fmt.Errorf("no digest files found: run 'paper-hunter digest' first or pass files explicitly")
		}

		if err := os.MkdirAll(cfg.Graph.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading digest %s: %w", path, err)
			}

			graph := conceptmap.Map(string(data), cfg.Graph)
			mermaid := conceptmap.RenderMermaid(graph)

			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			outPath := filepath.Join(cfg.Graph.OutputDir, base+".mmd")
			if err := os.WriteFile(outPath, []byte(mermaid+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing map %s: %w", outPath, err)
			}
			fmt.Fprintf(os.Stdout, "written %s (%d nodes, %d edges)\n",
				outPath, len(graph.Nodes), len(graph.Edges))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
}
