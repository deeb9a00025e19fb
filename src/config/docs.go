// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads optional harness settings from a JSON or YAML file.
//
// Settings cover the initial trial count, the timing mode, error reporting
// and diagnostic output. A missing path falls back to the
// X509_BENCH_CONFIG_FILE environment variable; with neither, defaults are
// returned. Example YAML:
//
//	bench:
//	  repeat: 10
//	  timing: trial
//	  summary: true
//	log:
//	  format: json
package config
