// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxRepeat is the largest trial count a single validation may request.
const MaxRepeat = 128

// Line prefixes of the input protocol.
const (
	PrefixLeaf      = "leaf: "
	PrefixInterm    = "interm: "
	PrefixRepeat    = "repeat: "
	PrefixDomain    = "domain: "
	CommandValidate = "validate"
	ResultPrefix    = "result: "
	ResultOK        = "OK"
	ResultNoErrMsg  = "no_error_msg"
)

// Kind classifies an input line.
type Kind int

const (
	// KindLeaf sets the leaf certificate of the current chain.
	KindLeaf Kind = iota + 1
	// KindIntermediate appends an intermediate certificate.
	KindIntermediate
	// KindRepeat sets the trial count for subsequent validations.
	KindRepeat
	// KindValidate validates the current chain without a hostname check.
	KindValidate
	// KindDomain validates the current chain against a hostname.
	KindDomain
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindIntermediate:
		return "interm"
	case KindRepeat:
		return "repeat"
	case KindValidate:
		return "validate"
	case KindDomain:
		return "domain"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is one parsed input line.
type Command struct {
	Kind Kind
	// Arg is the certificate text for leaf/interm lines and the hostname
	// for domain lines.
	Arg string
	// Repeat is set for repeat lines.
	Repeat int
	// Line is the raw line without its terminator.
	Line string
}

// Triggers reports whether the command runs a validation.
func (c Command) Triggers() bool { return c.Kind == KindValidate || c.Kind == KindDomain }

// Parse classifies a single input line. Trailing CR/LF characters are ignored.
// Unrecognized lines and malformed repeat counts return an *[Error].
func Parse(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")

	if rem, ok := strings.CutPrefix(line, PrefixLeaf); ok {
		return Command{Kind: KindLeaf, Arg: rem, Line: line}, nil
	}
	if rem, ok := strings.CutPrefix(line, PrefixInterm); ok {
		return Command{Kind: KindIntermediate, Arg: rem, Line: line}, nil
	}
	if rem, ok := strings.CutPrefix(line, PrefixRepeat); ok {
		n, err := ParseRepeat(rem)
		if err != nil {
			return Command{}, NewError(ReasonInvalidRepeat, line, err)
		}
		return Command{Kind: KindRepeat, Repeat: n, Line: line}, nil
	}
	if line == CommandValidate {
		return Command{Kind: KindValidate, Line: line}, nil
	}
	if rem, ok := strings.CutPrefix(line, PrefixDomain); ok {
		return Command{Kind: KindDomain, Arg: rem, Line: line}, nil
	}

	return Command{}, NewError(ReasonUnknownCommand, line, nil)
}

// ParseRepeat parses a trial count and checks it lies in [1, MaxRepeat].
func ParseRepeat(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if err := ValidateRepeat(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateRepeat checks that n is a usable trial count.
func ValidateRepeat(n int) error {
	if n < 1 || n > MaxRepeat {
		return fmt.Errorf("repeat %d outside [1, %d]", n, MaxRepeat)
	}
	return nil
}
