// Package models defines data structures for configuration and analysis results.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultNumberOfResults is the size of the ranked list when none is requested.
const DefaultNumberOfResults = 20

// AnalysisConfig holds runtime configuration for a single analysis run.
// Values come from CLI flags, optionally seeded from a YAML file.
type AnalysisConfig struct {
	InputFiles      []string      `yaml:"input_files"`
	RulesFile       string        `yaml:"rules_file,omitempty"`
	NumberOfResults int           `yaml:"number_of_results"`
	Strategy        RankStrategy  `yaml:"strategy"`
	Stemmer         StemAlgorithm `yaml:"stemmer"`
	Format          OutputFormat  `yaml:"format"`
	OutputPath      string        `yaml:"output,omitempty"`
	HTML            bool          `yaml:"html,omitempty"`
	BlockFilter     string        `yaml:"block_filter,omitempty"`
	DetectLanguage  bool          `yaml:"detect_language,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *AnalysisConfig {
	return &AnalysisConfig{
		NumberOfResults: DefaultNumberOfResults,
		Strategy:        StrategyBounded,
		Stemmer:         StemPorter,
		Format:          FormatTable,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*AnalysisConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the config describes a runnable analysis.
func (c *AnalysisConfig) Validate() error {
	if len(c.InputFiles) == 0 {
		return ErrNoInput
	}
	if _, err := ParseRankStrategy(string(c.Strategy)); err != nil {
		return err
	}
	if _, err := ParseStemAlgorithm(string(c.Stemmer)); err != nil {
		return err
	}
	if _, err := ParseOutputFormat(string(c.Format)); err != nil {
		return err
	}
	return nil
}
