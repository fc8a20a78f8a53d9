package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/checkmatch-dev/checkmatch/internal/checkkey"
)

// Config represents the top-level checkmatch.yaml configuration.
type Config struct {
	Matching MatchingConfig `yaml:"matching"`
	Columns  ColumnsConfig  `yaml:"columns"`
	Output   OutputConfig   `yaml:"output"`
}

// MatchingConfig holds the default normalization toggles for a run.
type MatchingConfig struct {
	TrimSpaces            bool `yaml:"trim_spaces"`
	StringifyNumeric      bool `yaml:"stringify_numeric"`
	StripTrailingDotZero  bool `yaml:"strip_trailing_dot_zero"`
	ExtractDigitsFromText bool `yaml:"extract_digits_from_text"`
}

// Options converts the config toggles into engine options.
func (m MatchingConfig) Options() checkkey.Options {
	return checkkey.Options{
		TrimSpaces:            m.TrimSpaces,
		StringifyNumeric:      m.StringifyNumeric,
		StripTrailingDotZero:  m.StripTrailingDotZero,
		ExtractDigitsFromText: m.ExtractDigitsFromText,
	}
}

// ColumnsConfig adds extra column-name aliases on top of the built-ins,
// for exports with house-specific header names.
type ColumnsConfig struct {
	CheckAliases  []string `yaml:"check_aliases,omitempty"`
	VendorAliases []string `yaml:"vendor_aliases,omitempty"`
}

// OutputConfig controls how result files are named and which extras are
// written next to the updated file.
type OutputConfig struct {
	UpdatedSuffix   string `yaml:"updated_suffix"`
	UnmatchedSuffix string `yaml:"unmatched_suffix"`
	BackupSuffix    string `yaml:"backup_suffix"`
	WriteUnmatched  bool   `yaml:"write_unmatched"`
	WriteBackup     bool   `yaml:"write_backup"`
}

// Load reads a checkmatch.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration matching the standard workflow:
// every normalization on, unmatched report and backup enabled.
func Default() *Config {
	return &Config{
		Matching: MatchingConfig{
			TrimSpaces:            true,
			StringifyNumeric:      true,
			StripTrailingDotZero:  true,
			ExtractDigitsFromText: true,
		},
		Output: OutputConfig{
			UpdatedSuffix:   "_Updated",
			UnmatchedSuffix: "_Unmatched",
			BackupSuffix:    "_Backup",
			WriteUnmatched:  true,
			WriteBackup:     true,
		},
	}
}
