// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package bench drives the certificate chain validation benchmark.
//
// A [Session] reads protocol lines and accumulates a chain. Each validation
// command hands the chain to a [Driver], which repeats the validation the
// requested number of times, timing each trial. [WriteResult] renders the
// final outcome and all measurements as one result line and flushes it, so
// a caller can treat the process as a streaming benchmark.
//
// Protocol and environment failures are returned as errors and end the run.
// Invalid certificates are not errors: they are what is being measured, and
// are reported as failure tokens on the result line.
package bench
