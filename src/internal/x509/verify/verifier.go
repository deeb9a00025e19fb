// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

import (
	"crypto/x509"
	"errors"
	"strings"

	x509chain "github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/roots"
)

var errEmptyHostname = errors.New("verify: empty domain name")

// Verifier checks a parsed chain against a trust store.
//
// Implementations must not retain or mutate params or the store; the same
// store is shared by every validation in the process.
type Verifier interface {
	Verify(ch *x509chain.Chain, store *roots.Store, params Params) error
}

// X509Verifier verifies chains with the crypto/x509 path builder.
//
// Every certificate in the store is treated as a trust anchor, so chains
// that terminate at a trusted intermediate verify without the root.
type X509Verifier struct{}

// NewX509Verifier returns the crypto/x509 backed [Verifier].
func NewX509Verifier() X509Verifier { return X509Verifier{} }

// Verify builds and checks a path from the chain's leaf to an anchor in store.
// Failures are returned as *[Error].
func (X509Verifier) Verify(ch *x509chain.Chain, store *roots.Store, params Params) error {
	// A blank domain fails outright instead of disabling the hostname check.
	if params.CheckHostname && strings.TrimSpace(params.Hostname) == "" {
		return &Error{Code: CodeEmptyHostname, Err: errEmptyHostname}
	}

	opts := x509.VerifyOptions{
		Roots:         store.Pool(),
		Intermediates: ch.IntermediatePool(),
		CurrentTime:   params.Time,
		KeyUsages:     []x509.ExtKeyUsage{params.Profile.Purpose},
	}
	if params.CheckHostname {
		opts.DNSName = params.Hostname
	}

	chains, err := ch.Leaf().Verify(opts)
	if err != nil {
		return classify(ch, params, err)
	}
	// A nil error with nothing verified means the library disagrees with itself.
	if len(chains) == 0 {
		return &Error{Code: CodeUnspecified}
	}

	maxDepth := params.Profile.MaxDepth
	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}
	for _, path := range chains {
		if len(path)-1 <= maxDepth {
			return nil
		}
	}
	return &Error{Code: CodeChainTooLong}
}
