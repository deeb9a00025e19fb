// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pkitest issues throwaway certificate hierarchies for tests.
package pkitest

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	x509certs "github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/certs"
)

// Now is the reference instant every generated certificate is valid at.
var Now = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

// Cert pairs a certificate with the key that can issue beneath it.
type Cert struct {
	Cert *x509.Certificate
	Key  *ecdsa.PrivateKey
}

// Option adjusts a certificate template before signing.
type Option func(tmpl *x509.Certificate)

// WithDNSNames sets the subject alternative DNS names.
func WithDNSNames(names ...string) Option {
	return func(tmpl *x509.Certificate) { tmpl.DNSNames = names }
}

// WithValidity overrides the validity window.
func WithValidity(notBefore, notAfter time.Time) Option {
	return func(tmpl *x509.Certificate) {
		tmpl.NotBefore = notBefore
		tmpl.NotAfter = notAfter
	}
}

// WithExtKeyUsage overrides the extended key usages.
func WithExtKeyUsage(usages ...x509.ExtKeyUsage) Option {
	return func(tmpl *x509.Certificate) { tmpl.ExtKeyUsage = usages }
}

// AsCA marks the certificate as a certificate authority.
func AsCA() Option {
	return func(tmpl *x509.Certificate) {
		tmpl.IsCA = true
		tmpl.BasicConstraintsValid = true
		tmpl.KeyUsage = x509.KeyUsageCertSign | x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature
		tmpl.ExtKeyUsage = nil
	}
}

var serial atomic.Int64

func template(cn string, opts []Option) *x509.Certificate {
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(serial.Add(1)),
		Subject:               pkix.Name{CommonName: cn, Organization: []string{"x509-cert-bench"}},
		NotBefore:             Now.Add(-24 * time.Hour),
		NotAfter:              Now.Add(365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}
	for _, opt := range opts {
		opt(tmpl)
	}
	return tmpl
}

func sign(t testing.TB, tmpl, parent *x509.Certificate, pub *ecdsa.PublicKey, signer *ecdsa.PrivateKey) *x509.Certificate {
	t.Helper()

	der, err := x509.CreateCertificate(rand.Reader, tmpl, parent, pub, signer)
	if err != nil {
		t.Fatalf("create certificate %q: %v", tmpl.Subject.CommonName, err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parse certificate %q: %v", tmpl.Subject.CommonName, err)
	}
	return cert
}

func newKey(t testing.TB) *ecdsa.PrivateKey {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return key
}

// NewRoot creates a self-signed certificate authority.
func NewRoot(t testing.TB, cn string, opts ...Option) *Cert {
	t.Helper()

	key := newKey(t)
	tmpl := template(cn, append([]Option{AsCA()}, opts...))
	return &Cert{Cert: sign(t, tmpl, tmpl, &key.PublicKey, key), Key: key}
}

// NewSelfSigned creates a self-signed end-entity certificate.
func NewSelfSigned(t testing.TB, cn string, opts ...Option) *Cert {
	t.Helper()

	key := newKey(t)
	tmpl := template(cn, opts)
	return &Cert{Cert: sign(t, tmpl, tmpl, &key.PublicKey, key), Key: key}
}

// Issue signs a new certificate beneath c. Pass [AsCA] for an intermediate.
func (c *Cert) Issue(t testing.TB, cn string, opts ...Option) *Cert {
	t.Helper()

	key := newKey(t)
	tmpl := template(cn, opts)
	return &Cert{Cert: sign(t, tmpl, c.Cert, &key.PublicKey, c.Key), Key: key}
}

// Text returns the single-line base64 DER form used by the benchmark protocol.
func (c *Cert) Text() string { return x509certs.New().EncodeText(c.Cert) }

// WritePEM writes the certificates into a PEM bundle under dir and returns its path.
func WritePEM(t testing.TB, dir string, certs ...*Cert) string {
	t.Helper()

	parsed := make([]*x509.Certificate, 0, len(certs))
	for _, c := range certs {
		parsed = append(parsed, c.Cert)
	}
	data := x509certs.New().EncodeMultiplePEM(parsed)

	path := filepath.Join(dir, "roots.pem")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write roots: %v", err)
	}
	return path
}
