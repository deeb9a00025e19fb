// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

import (
	"crypto/x509"
	"time"
)

// MaxDepth bounds how many certificates may sit above the leaf in a verified path.
const MaxDepth = 64

// Profile is the fixed policy every validation runs under.
type Profile struct {
	// Purpose is the extended key usage the leaf must be valid for.
	Purpose x509.ExtKeyUsage
	// MaxDepth bounds the verified path length above the leaf.
	MaxDepth int
}

// DefaultProfile validates TLS server certificates.
var DefaultProfile = Profile{
	Purpose:  x509.ExtKeyUsageServerAuth,
	MaxDepth: MaxDepth,
}

// Params describes a single validation call. It is a value: construct a
// fresh one per validation command and pass it explicitly to the verifier.
type Params struct {
	Time          time.Time
	Hostname      string
	CheckHostname bool
	Profile       Profile
}

// NewParams returns parameters for validating at t without a hostname check.
func NewParams(t time.Time) Params {
	return Params{Time: t, Profile: DefaultProfile}
}

// WithHostname returns a copy of p that also checks the leaf against hostname.
func (p Params) WithHostname(hostname string) Params {
	p.Hostname = hostname
	p.CheckHostname = true
	return p
}
