// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-hunter CLI.
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-hunter/internal/secrets"
	"github.com/pdiddy/paper-hunter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, otherwise the secret value
// for key, otherwise "".
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the paper-hunter CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-hunter",
	Short: "Hunt, digest, and map recent quantum-science papers",
	Long: `paper-hunter retrieves the most relevant newly published quantum-science
papers for a set of keywords, generates a structured digest for each paper,
and derives a concept map (entities and relations) from every digest.

Each pipeline stage is a subcommand: hunt, digest, and map. The run command
chains all three.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-hunter.yaml or ~/.config/paper-hunter/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-hunter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-hunter"))
		}
	}

	viper.SetEnvPrefix("PAPER_HUNTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configurations from defaults, the
// config file, and loaded secrets.
func pipelineConfig() types.PipelineConfig {
	cfg := types.PipelineConfig{
		Hunt:   types.DefaultHuntConfig(),
		Digest: types.DefaultDigestConfig(),
		Graph:  types.DefaultGraphConfig(),
	}

	if viper.IsSet("hunt.categories") {
		cfg.Hunt.Categories = viper.GetStringSlice("hunt.categories")
	}
	if viper.IsSet("hunt.lookback_days") {
		cfg.Hunt.LookbackDays = viper.GetInt("hunt.lookback_days")
	}
	if viper.IsSet("hunt.citation_lookback_days") {
		cfg.Hunt.CitationLookbackDays = viper.GetInt("hunt.citation_lookback_days")
	}
	if viper.IsSet("hunt.widened_lookback_days") {
		cfg.Hunt.WidenedLookbackDays = viper.GetInt("hunt.widened_lookback_days")
	}
	if viper.IsSet("hunt.widened_citation_days") {
		cfg.Hunt.WidenedCitationDays = viper.GetInt("hunt.widened_citation_days")
	}
	if viper.IsSet("hunt.min_results") {
		cfg.Hunt.MinResults = viper.GetInt("hunt.min_results")
	}
	if viper.IsSet("hunt.min_abstract_words") {
		cfg.Hunt.MinAbstractWords = viper.GetInt("hunt.min_abstract_words")
	}
	if viper.IsSet("hunt.timeout") {
		cfg.Hunt.Timeout = viper.GetDuration("hunt.timeout")
		cfg.Digest.Timeout = cfg.Hunt.Timeout
	}
	cfg.Hunt.SemanticScholarAPIKey = secretDefault("semantic-scholar-api-key",
		viper.GetString("hunt.semantic_scholar_api_key"))

	if viper.IsSet("digest.output_dir") {
		cfg.Digest.OutputDir = viper.GetString("digest.output_dir")
	}
	if viper.IsSet("digest.pdftotext_path") {
		cfg.Digest.PdftotextPath = viper.GetString("digest.pdftotext_path")
	}

	if viper.IsSet("graph.max_nodes") {
		cfg.Graph.MaxNodes = viper.GetInt("graph.max_nodes")
	}
	if viper.IsSet("graph.max_edges") {
		cfg.Graph.MaxEdges = viper.GetInt("graph.max_edges")
	}
	if viper.IsSet("graph.output_dir") {
		cfg.Graph.OutputDir = viper.GetString("graph.output_dir")
	}

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
