// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"strings"
	"unicode"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/protocol"
)

// TokenParseError is reported when any certificate in the chain fails to
// decode or parse.
const TokenParseError = "parse_error"

// Outcome is the result of one validation: success, or failure with a token.
type Outcome struct {
	OK    bool
	Token string
}

// Success returns the successful outcome.
func Success() Outcome { return Outcome{OK: true, Token: protocol.ResultOK} }

// Failure returns a failed outcome whose token is derived from desc.
func Failure(desc string) Outcome { return Outcome{Token: NormalizeToken(desc)} }

// NormalizeToken turns a failure description into a single result field.
// Every whitespace character becomes an underscore; an empty description
// yields the no_error_msg sentinel.
func NormalizeToken(desc string) string {
	if desc == "" {
		return protocol.ResultNoErrMsg
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, desc)
}

// String returns the token written on the result line.
func (o Outcome) String() string {
	if o.OK {
		return protocol.ResultOK
	}
	if o.Token == "" {
		return protocol.ResultNoErrMsg
	}
	return o.Token
}
