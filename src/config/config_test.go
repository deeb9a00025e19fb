// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/config"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Defaults Without File",
			testFunc: func(t *testing.T) {
				t.Setenv(config.EnvConfigFile, "")

				cfg, err := config.Load("")
				require.NoError(t, err)
				assert.Equal(t, config.Default(), cfg)
				assert.Equal(t, 1, cfg.Bench.Repeat)
				assert.Equal(t, "verify", cfg.Bench.Timing)
				assert.Equal(t, "text", cfg.Log.Format)
				assert.False(t, cfg.Bench.Summary)
				assert.False(t, cfg.Bench.RawErrors)
			},
		},
		{
			name: "YAML File",
			testFunc: func(t *testing.T) {
				path := writeConfig(t, "bench.yaml", `
bench:
  repeat: 10
  timing: trial
  rawErrors: true
  summary: true
log:
  format: json
  silent: true
`)
				cfg, err := config.Load(path)
				require.NoError(t, err)
				assert.Equal(t, 10, cfg.Bench.Repeat)
				assert.Equal(t, "trial", cfg.Bench.Timing)
				assert.True(t, cfg.Bench.RawErrors)
				assert.True(t, cfg.Bench.Summary)
				assert.Equal(t, "json", cfg.Log.Format)
				assert.True(t, cfg.Log.Silent)
			},
		},
		{
			name: "YML Extension Is Case Insensitive",
			testFunc: func(t *testing.T) {
				path := writeConfig(t, "bench.YML", "bench:\n  repeat: 7\n")
				cfg, err := config.Load(path)
				require.NoError(t, err)
				assert.Equal(t, 7, cfg.Bench.Repeat)
				assert.Equal(t, "verify", cfg.Bench.Timing)
			},
		},
		{
			name: "JSON File",
			testFunc: func(t *testing.T) {
				path := writeConfig(t, "bench.json", `{"bench":{"repeat":128,"timing":"TRIAL"},"log":{"format":"json"}}`)
				cfg, err := config.Load(path)
				require.NoError(t, err)
				assert.Equal(t, 128, cfg.Bench.Repeat)
				assert.Equal(t, "trial", cfg.Bench.Timing)
				assert.Equal(t, "json", cfg.Log.Format)
			},
		},
		{
			name: "Invalid Values Fall Back To Defaults",
			testFunc: func(t *testing.T) {
				path := writeConfig(t, "bench.yaml", "bench:\n  repeat: 500\n  timing: wall\nlog:\n  format: xml\n")
				cfg, err := config.Load(path)
				require.NoError(t, err)
				assert.Equal(t, config.DefaultRepeat, cfg.Bench.Repeat)
				assert.Equal(t, config.DefaultTiming, cfg.Bench.Timing)
				assert.Equal(t, config.DefaultLogFormat, cfg.Log.Format)
			},
		},
		{
			name: "Environment Variable",
			testFunc: func(t *testing.T) {
				path := writeConfig(t, "env.json", `{"bench":{"repeat":3}}`)
				t.Setenv(config.EnvConfigFile, path)

				cfg, err := config.Load("")
				require.NoError(t, err)
				assert.Equal(t, 3, cfg.Bench.Repeat)
			},
		},
		{
			name: "Explicit Path Wins Over Environment",
			testFunc: func(t *testing.T) {
				t.Setenv(config.EnvConfigFile, writeConfig(t, "env.json", `{"bench":{"repeat":3}}`))
				path := writeConfig(t, "flag.json", `{"bench":{"repeat":9}}`)

				cfg, err := config.Load(path)
				require.NoError(t, err)
				assert.Equal(t, 9, cfg.Bench.Repeat)
			},
		},
		{
			name: "Missing File",
			testFunc: func(t *testing.T) {
				_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
				require.Error(t, err)
				assert.ErrorIs(t, err, os.ErrNotExist)
			},
		},
		{
			name: "Malformed YAML",
			testFunc: func(t *testing.T) {
				path := writeConfig(t, "bad.yaml", "bench: [repeat\n")
				_, err := config.Load(path)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "YAML")
			},
		},
		{
			name: "Malformed JSON",
			testFunc: func(t *testing.T) {
				path := writeConfig(t, "bad.json", `{"bench":`)
				_, err := config.Load(path)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "JSON")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}
