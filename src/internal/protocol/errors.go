// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import (
	"errors"
	"fmt"
)

// Reason identifies which protocol rule an input line broke.
type Reason int

const (
	ReasonUnknownCommand Reason = iota + 1
	ReasonDuplicateLeaf
	ReasonNoLeafYet
	ReasonInvalidRepeat
	ReasonChainTooLong
)

var (
	// ErrUnknownCommand indicates a line outside the command vocabulary.
	ErrUnknownCommand = errors.New("protocol: invalid command")

	// ErrDuplicateLeaf indicates a second leaf line for the same chain.
	ErrDuplicateLeaf = errors.New("protocol: leaf read multiple times")

	// ErrNoLeafYet indicates an intermediate or validation before any leaf.
	ErrNoLeafYet = errors.New("protocol: leaf not read yet")

	// ErrInvalidRepeat indicates a repeat count that is not an integer in [1, MaxRepeat].
	ErrInvalidRepeat = errors.New("protocol: invalid repeat")

	// ErrChainTooLong indicates more certificates than a chain may hold.
	ErrChainTooLong = errors.New("protocol: too many certificates in chain")
)

func (r Reason) sentinel() error {
	switch r {
	case ReasonUnknownCommand:
		return ErrUnknownCommand
	case ReasonDuplicateLeaf:
		return ErrDuplicateLeaf
	case ReasonNoLeafYet:
		return ErrNoLeafYet
	case ReasonInvalidRepeat:
		return ErrInvalidRepeat
	case ReasonChainTooLong:
		return ErrChainTooLong
	default:
		return errors.New("protocol: error")
	}
}

// maxQuotedLine keeps certificate payloads out of diagnostics.
const maxQuotedLine = 48

// Error is a fatal protocol violation. It matches its reason's sentinel
// with [errors.Is] and unwraps to the underlying cause, if any.
type Error struct {
	Reason Reason
	Line   string
	Err    error
}

// NewError returns an *Error for the given reason and offending line.
func NewError(reason Reason, line string, err error) *Error {
	return &Error{Reason: reason, Line: line, Err: err}
}

func (e *Error) Error() string {
	msg := e.Reason.sentinel().Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	line := e.Line
	if len(line) > maxQuotedLine {
		line = line[:maxQuotedLine] + "..."
	}
	return fmt.Sprintf("%s (line %q)", msg, line)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason.sentinel()}
	}
	return []error{e.Reason.sentinel(), e.Err}
}
