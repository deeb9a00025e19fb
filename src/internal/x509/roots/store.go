// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package roots

import (
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/certs"
)

// ErrEmptyStore indicates a trust anchor source without any certificate.
var ErrEmptyStore = errors.New("roots: no trust anchors found")

// Store is a set of trust anchors. It is populated once and read-only afterwards,
// so a single Store may back any number of sequential or concurrent validations.
type Store struct {
	pool  *x509.CertPool
	certs []*x509.Certificate
}

// New builds a Store from already parsed anchors.
func New(anchors ...*x509.Certificate) (*Store, error) {
	if len(anchors) == 0 {
		return nil, ErrEmptyStore
	}

	pool := x509.NewCertPool()
	for _, cert := range anchors {
		pool.AddCert(cert)
	}

	return &Store{pool: pool, certs: append([]*x509.Certificate(nil), anchors...)}, nil
}

// Load reads a PEM (or DER / PKCS7) bundle of trust anchors from path.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roots: failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("roots: failed to read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("roots: %s: %w", path, ErrEmptyStore)
	}

	certs, err := x509certs.New().DecodeMultiple(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("roots: failed to load %s: %w", path, err)
	}

	return New(certs...)
}

// Pool returns the anchors as a pool for path building. Callers must not add to it.
func (s *Store) Pool() *x509.CertPool { return s.pool }

// Len returns the number of trust anchors.
func (s *Store) Len() int { return len(s.certs) }
