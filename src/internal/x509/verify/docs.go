// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package verify adapts the crypto/x509 path builder into the validation call
// the benchmark measures. It defines the immutable [Params] passed on every
// call, the [Verifier] interface, and a stable [Code] vocabulary whose
// descriptions become the failure tokens reported on the result line.
package verify
