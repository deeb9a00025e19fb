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
)

// Code identifies why a verification failed.
type Code int

const (
	// CodeOK is the verifier's "no error" value.
	CodeOK Code = iota
	// CodeUnspecified marks a failure the verifier reported without a reason.
	CodeUnspecified
	CodeUnableToGetIssuer
	CodeSelfSigned
	CodeSelfSignedInChain
	CodeCertNotYetValid
	CodeCertHasExpired
	CodeInvalidCA
	CodePathLengthExceeded
	CodeChainTooLong
	CodeInvalidPurpose
	CodeHostnameMismatch
	CodeEmptyHostname
	CodeSubjectIssuerMismatch
	CodePermittedSubtreeViolation
	CodeNameConstraintsTooComplex
	CodeUnhandledCriticalExtension
	CodeWeakAlgorithm
	CodeApplicationVerification
)

var descriptions = map[Code]string{
	CodeOK:                         "ok",
	CodeUnspecified:                "",
	CodeUnableToGetIssuer:          "unable to get local issuer certificate",
	CodeSelfSigned:                 "self-signed certificate",
	CodeSelfSignedInChain:          "self-signed certificate in certificate chain",
	CodeCertNotYetValid:            "certificate is not yet valid",
	CodeCertHasExpired:             "certificate has expired",
	CodeInvalidCA:                  "invalid CA certificate",
	CodePathLengthExceeded:         "path length constraint exceeded",
	CodeChainTooLong:               "certificate chain too long",
	CodeInvalidPurpose:             "unsupported certificate purpose",
	CodeHostnameMismatch:           "hostname mismatch",
	CodeEmptyHostname:              "empty domain name",
	CodeSubjectIssuerMismatch:      "subject issuer mismatch",
	CodePermittedSubtreeViolation:  "permitted subtree violation",
	CodeNameConstraintsTooComplex:  "name constraints too complex",
	CodeUnhandledCriticalExtension: "unhandled critical extension",
	CodeWeakAlgorithm:              "signature algorithm too weak",
	CodeApplicationVerification:    "application verification failure",
}

// String returns the human-readable description of the code. [CodeUnspecified]
// has no description.
func (c Code) String() string { return descriptions[c] }

// Error is a verification failure with its classified [Code].
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if desc := e.Code.String(); desc != "" {
		return "verify: " + desc
	}
	return "verify: verification failed"
}

func (e *Error) Unwrap() error { return e.Err }

// Describe returns the description of a verification error. With raw set,
// the underlying library message is used instead of the code description.
func Describe(err error, raw bool) string {
	var verr *Error
	if !errors.As(err, &verr) {
		return strings.TrimPrefix(err.Error(), "x509: ")
	}
	if raw && verr.Err != nil {
		return strings.TrimPrefix(verr.Err.Error(), "x509: ")
	}
	return verr.Code.String()
}

// classify maps a crypto/x509 verification error onto a [Code].
func classify(ch *x509chain.Chain, params Params, err error) *Error {
	var (
		hostErr     x509.HostnameError
		invalidErr  x509.CertificateInvalidError
		unknownErr  x509.UnknownAuthorityError
		algErr      x509.InsecureAlgorithmError
		criticalErr x509.UnhandledCriticalExtension
		systemErr   x509.SystemRootsError
	)

	code := CodeApplicationVerification
	switch {
	case errors.As(err, &hostErr):
		code = CodeHostnameMismatch
	case errors.As(err, &invalidErr):
		code = invalidReason(invalidErr, params)
	case errors.As(err, &unknownErr):
		code = CodeUnableToGetIssuer
		if unknownErr.Cert != nil && x509chain.IsSelfSigned(unknownErr.Cert) {
			code = CodeSelfSignedInChain
			if ch.IsLeaf(unknownErr.Cert) {
				code = CodeSelfSigned
			}
		}
	case errors.As(err, &algErr):
		code = CodeWeakAlgorithm
	case errors.As(err, &criticalErr):
		code = CodeUnhandledCriticalExtension
	case errors.As(err, &systemErr):
		code = CodeUnableToGetIssuer
	}

	return &Error{Code: code, Err: err}
}

func invalidReason(err x509.CertificateInvalidError, params Params) Code {
	switch err.Reason {
	case x509.Expired:
		if err.Cert != nil && params.Time.Before(err.Cert.NotBefore) {
			return CodeCertNotYetValid
		}
		return CodeCertHasExpired
	case x509.NotAuthorizedToSign:
		return CodeInvalidCA
	case x509.TooManyIntermediates:
		return CodePathLengthExceeded
	case x509.IncompatibleUsage, x509.CANotAuthorizedForExtKeyUsage:
		return CodeInvalidPurpose
	case x509.NameMismatch:
		return CodeSubjectIssuerMismatch
	case x509.CANotAuthorizedForThisName, x509.NameConstraintsWithoutSANs, x509.UnconstrainedName:
		return CodePermittedSubtreeViolation
	case x509.TooManyConstraints:
		return CodeNameConstraintsTooComplex
	default:
		return CodeApplicationVerification
	}
}
