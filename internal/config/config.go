// internal/config/config.go

// package config gathers every tuning knob of the recovery pipeline into one
// loadable document. the heuristic thresholds and score weights have no
// derivation beyond "these worked on real captures", so none of them are
// hard-coded at call sites - the defaults here are the tuned values and a
// yaml file can override any subset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"go_tap_to_basic/internal/blocks"
	"go_tap_to_basic/internal/cluster"
	"go_tap_to_basic/internal/locate"
)

// Config is the full tuning document.
type Config struct {
	Cluster cluster.Params           `yaml:"cluster"`
	Scan    locate.ScanParams        `yaml:"scan"`
	Header  blocks.HeaderScoreParams `yaml:"header"`
	Strings StringsParams            `yaml:"strings"`

	// ChecksumSample bounds how many used blocks contribute to the
	// checksum-match quality metric.
	ChecksumSample int `yaml:"checksum_sample"`
}

// StringsParams tunes incidental text extraction.
type StringsParams struct {
	MinLength        int      `yaml:"min_length"`
	LocationPrefixes []string `yaml:"location_prefixes"`
}

// Default returns the tuned configuration.
func Default() Config {
	return Config{
		Cluster: cluster.DefaultParams(),
		Scan:    locate.DefaultScanParams(),
		Header:  blocks.DefaultHeaderScoreParams(),
		Strings: StringsParams{
			MinLength:        2,
			LocationPrefixes: nil, // textscan falls back to its built-in prefixes
		},
		ChecksumSample: 200,
	}
}

// Load reads a yaml override file on top of the defaults. an empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file '%s': %w", path, err)
	}
	return cfg, nil
}
