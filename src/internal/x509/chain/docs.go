// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain models the certificate chains submitted to the benchmark.
// It provides:
//   - [Builder], which accumulates certificate texts line by line and enforces
//     leaf-first ordering.
//   - [Bundle], the immutable result handed to a validation run.
//   - [Chain], the parsed [X.509] form of a bundle, re-created for every trial.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509chain
