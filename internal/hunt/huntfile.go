// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hunt

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

// HuntFile is the on-disk representation of a hunt and its results. The
// researcher can save a hunt to a file and reload the keyword set later
// without retyping it.
type HuntFile struct {
	Keywords []string      `yaml:"keywords"`
	Config   HuntFileCfg   `yaml:"config"`
	Papers   []types.Paper `yaml:"papers"`
	Summary  HuntSummary   `yaml:"summary"`
}

// HuntFileCfg stores the settings that produced the results.
type HuntFileCfg struct {
	MaxPapers    int  `yaml:"max_papers"`
	LookbackDays int  `yaml:"lookback_days"`
	Widened      bool `yaml:"widened"`
}

// HuntSummary stores result statistics and a timestamp.
type HuntSummary struct {
	Total     int       `yaml:"total"`
	Warnings  []string  `yaml:"warnings,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// ReadHuntFile loads a saved hunt from a YAML file.
func ReadHuntFile(path string) (HuntFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HuntFile{}, fmt.Errorf("reading hunt file: %w", err)
	}

	var hf HuntFile
	if err := yaml.Unmarshal(data, &hf); err != nil {
		return HuntFile{}, fmt.Errorf("parsing hunt file %s: %w", path, err)
	}
	return hf, nil
}

// LoadKeywords reads a keyword set from a YAML hunt file. A file with no
// keywords is caller misuse and returns an error, matching the fail-fast
// contract of Hunt.
func LoadKeywords(path string) ([]string, error) {
	hf, err := ReadHuntFile(path)
	if err != nil {
		return nil, err
	}
	if !hasKeywords(hf.Keywords) {
		return nil, fmt.Errorf("keywords file %s contains no keywords", path)
	}
	return hf.Keywords, nil
}

// WriteHuntFile saves keywords, settings, and results to a YAML file.
func WriteHuntFile(path string, keywords []string, maxPapers int, cfg types.HuntConfig, out Output) error {
	hf := HuntFile{
		Keywords: keywords,
		Config: HuntFileCfg{
			MaxPapers:    maxPapers,
			LookbackDays: cfg.LookbackDays,
			Widened:      out.Widened,
		},
		Papers: out.Papers,
		Summary: HuntSummary{
			Total:     len(out.Papers),
			Warnings:  out.Warnings,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&hf)
	if err != nil {
		return fmt.Errorf("marshaling hunt file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing hunt file %s: %w", path, err)
	}
	return nil
}
