// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"crypto/x509"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/helper/pkitest"
)

func x509Opts(root *pkitest.Cert, intermediates *x509.CertPool) x509.VerifyOptions {
	roots := x509.NewCertPool()
	roots.AddCert(root.Cert)
	return x509.VerifyOptions{
		Roots:         roots,
		Intermediates: intermediates,
		CurrentTime:   pkitest.Now,
	}
}
