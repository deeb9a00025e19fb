// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/protocol"
)

// EnvConfigFile names the environment variable consulted when no
// configuration path is given explicitly.
const EnvConfigFile = "X509_BENCH_CONFIG_FILE"

// Default values applied before a configuration file is read.
const (
	DefaultRepeat    = 1
	DefaultTiming    = "verify"
	DefaultLogFormat = "text"
)

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config represents the benchmark harness configuration.
//
// The configuration can be loaded from a JSON or YAML file, with defaults
// applied for any missing or invalid values.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Bench: Settings for the validation driver
	Bench struct {
		// Repeat: Trial count used until the first repeat line (1..128)
		Repeat int `json:"repeat" yaml:"repeat"`
		// Timing: What each measurement brackets ("verify" or "trial")
		Timing string `json:"timing" yaml:"timing"`
		// RawErrors: Report the verifier's own error text instead of the stable descriptions
		RawErrors bool `json:"rawErrors" yaml:"rawErrors"`
		// Summary: Write a summary table to stderr at end of input
		Summary bool `json:"summary" yaml:"summary"`
	} `json:"bench" yaml:"bench"`

	// Log: Diagnostic output settings
	Log struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
		// Silent: Suppress informational diagnostics; fatal errors are still reported
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.Bench.Repeat = DefaultRepeat
	cfg.Bench.Timing = DefaultTiming
	cfg.Log.Format = DefaultLogFormat
	return cfg
}

// detectFormat determines the configuration file format based on file extension.
//
// Parameters:
//   - path: Path to the configuration file
//
// Returns:
//   - format: The detected format (formatJSON or formatYAML)
//
// Extension matching is case-insensitive; unknown extensions are read as JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal decodes configuration data in the given format into cfg.
//
// Parameters:
//   - data: Raw configuration file contents
//   - cfg: Pointer to Config struct to populate
//   - f: The configuration format
//
// Returns:
//   - error: Any parsing error encountered during unmarshaling
func unmarshal(data []byte, cfg *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load reads the configuration file at path, or applies defaults.
//
// Parameters:
//   - path: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config with defaults applied
//   - An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. X509_BENCH_CONFIG_FILE is checked if path is empty
//  3. Config file values override defaults (if a file is given)
//  4. Out-of-range values fall back to their defaults
//
// Command-line flags are applied on top of the result by the caller.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read config file: %w", err)
	}
	if err := unmarshal(data, cfg, detectFormat(path)); err != nil {
		return nil, err
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if protocol.ValidateRepeat(c.Bench.Repeat) != nil {
		c.Bench.Repeat = DefaultRepeat
	}

	c.Bench.Timing = strings.ToLower(strings.TrimSpace(c.Bench.Timing))
	if c.Bench.Timing != "verify" && c.Bench.Timing != "trial" {
		c.Bench.Timing = DefaultTiming
	}

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format != "text" && c.Log.Format != "json" {
		c.Log.Format = DefaultLogFormat
	}
}
