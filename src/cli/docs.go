// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of the X.509 chain
// validation benchmark harness.
//
// It implements a Cobra root command taking a trust-anchor bundle and a Unix
// timestamp, merges flags over the optional configuration file, loads the
// trust store, and runs a benchmark session that reads commands from stdin
// and writes result lines to stdout. Fatal errors are reported through the
// logger package and returned to the caller, which owns the exit code.
package cli
