// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the diagnostic output of the benchmark harness.
// It defines the Logger interface and two implementations: CLILogger for
// human-readable messages and JSONLogger for one JSON object per line.
// Both write to stderr by default; stdout belongs to the result protocol.
// JSONLogger encodes entries into pooled buffers and is safe for concurrent use.
package logger
