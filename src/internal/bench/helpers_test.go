// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/bench"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/helper/pkitest"
	x509chain "github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/roots"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/verify"
)

// stepClock advances by step on every reading.
func stepClock(step time.Duration) bench.Clock {
	now := pkitest.Now
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

// scriptedVerifier returns its results in order, repeating the last one.
type scriptedVerifier struct {
	results []error
	calls   int
	params  []verify.Params
}

func (v *scriptedVerifier) Verify(_ *x509chain.Chain, _ *roots.Store, params verify.Params) error {
	v.params = append(v.params, params)
	idx := min(v.calls, len(v.results)-1)
	v.calls++
	if idx < 0 {
		return nil
	}
	return v.results[idx]
}

type pki struct {
	root  *pkitest.Cert
	inter *pkitest.Cert
	leaf  *pkitest.Cert
	self  *pkitest.Cert
	store *roots.Store
}

func newPKI(t *testing.T) pki {
	t.Helper()

	root := pkitest.NewRoot(t, "Bench Root")
	inter := root.Issue(t, "Bench Intermediate", pkitest.AsCA())
	leaf := inter.Issue(t, "www.bench.test", pkitest.WithDNSNames("www.bench.test"))
	self := pkitest.NewSelfSigned(t, "self.bench.test", pkitest.WithDNSNames("self.bench.test"))

	store, err := roots.New(root.Cert, self.Cert)
	require.NoError(t, err)

	return pki{root: root, inter: inter, leaf: leaf, self: self, store: store}
}

func bundleOf(t *testing.T, texts ...string) x509chain.Bundle {
	t.Helper()

	b := x509chain.NewBuilder()
	require.NoError(t, b.SetLeaf(texts[0]))
	for _, text := range texts[1:] {
		require.NoError(t, b.AddIntermediate(text))
	}
	bundle, err := b.Take()
	require.NoError(t, err)
	return bundle
}
