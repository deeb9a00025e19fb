// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"bytes"
	"crypto/x509"
	"fmt"

	x509certs "github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/certs"
)

// ParseError reports which bundle position failed to decode or parse.
type ParseError struct {
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("x509chain: certificate %d: %v", e.Index, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Chain manages parsed [X.509] certificates in bundle order.
//
// [X.509]: https://grokipedia.com/page/X.509
type Chain struct {
	Certs []*x509.Certificate
}

// New creates a new Chain from a leaf and its intermediates.
//
// Parameters:
//   - leaf: End-entity certificate
//   - intermediates: Intermediate certificates in presentation order
//
// Returns:
//   - *Chain: New Chain instance
func New(leaf *x509.Certificate, intermediates ...*x509.Certificate) *Chain {
	certs := make([]*x509.Certificate, 0, 1+len(intermediates))
	certs = append(certs, leaf)
	certs = append(certs, intermediates...)
	return &Chain{Certs: certs}
}

// Parse decodes and parses every certificate text in the bundle.
//
// Parsing stops at the first failing position; the returned error is a
// *[ParseError] wrapping the codec error.
//
// Parameters:
//   - bundle: Certificate texts, leaf first
//   - codec: Decoder for base64 certificate text
//
// Returns:
//   - *Chain: Parsed chain
//   - error: Error if any certificate fails to decode or parse
func Parse(bundle Bundle, codec *x509certs.Certificate) (*Chain, error) {
	if bundle.Len() == 0 {
		return nil, ErrNoLeaf
	}

	certs := make([]*x509.Certificate, 0, bundle.Len())
	for i, text := range bundle.texts {
		cert, err := codec.DecodeText(text)
		if err != nil {
			return nil, &ParseError{Index: i, Err: err}
		}
		certs = append(certs, cert)
	}

	return New(certs[0], certs[1:]...), nil
}

// Leaf returns the end-entity certificate.
func (ch *Chain) Leaf() *x509.Certificate { return ch.Certs[0] }

// Intermediates returns every certificate after the leaf.
func (ch *Chain) Intermediates() []*x509.Certificate { return ch.Certs[1:] }

// IntermediatePool collects the intermediates into a pool for path building.
func (ch *Chain) IntermediatePool() *x509.CertPool {
	pool := x509.NewCertPool()
	for _, cert := range ch.Intermediates() {
		pool.AddCert(cert)
	}
	return pool
}

// IsSelfSigned checks if a certificate is self-signed.
//
// It compares issuer and subject, then verifies the certificate's signature
// against its own key. Unlike CheckSignatureFrom this also holds for
// self-signed end-entity certificates that are not CAs.
//
// Parameters:
//   - cert: Certificate to check
//
// Returns:
//   - bool: true if self-signed, false otherwise
func IsSelfSigned(cert *x509.Certificate) bool {
	if !bytes.Equal(cert.RawIssuer, cert.RawSubject) {
		return false
	}
	return cert.CheckSignature(cert.SignatureAlgorithm, cert.RawTBSCertificate, cert.Signature) == nil
}

// IsLeaf reports whether cert is the chain's end-entity certificate.
func (ch *Chain) IsLeaf(cert *x509.Certificate) bool {
	return len(ch.Certs) > 0 && ch.Certs[0].Equal(cert)
}
