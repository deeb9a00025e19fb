// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides process helpers that behave the same on every platform.
//
// ExecutableName feeds the command's usage line, so help output names the
// binary the way the user invoked it:
//
//	/usr/local/bin/x509-cert-bench  ->  x509-cert-bench
//	C:\bin\bench.exe                ->  bench
package posix
