// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/protocol"
	x509chain "github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/verify"
)

// SessionConfig configures a [Session].
type SessionConfig struct {
	// Time is the instant every chain is validated at.
	Time time.Time
	// Repeat is the trial count until the first repeat line; 0 means 1.
	Repeat int
	// Summary, when set, records every validation.
	Summary *Summary
}

// Session consumes protocol lines, accumulates chains, and writes one
// result line per validation command.
//
// Any returned error is fatal: the caller must stop feeding lines.
type Session struct {
	driver  *Driver
	out     io.Writer
	at      time.Time
	repeat  int
	builder *x509chain.Builder
	summary *Summary
	count   int
}

// NewSession returns a Session that validates with driver and writes results to out.
func NewSession(driver *Driver, out io.Writer, cfg SessionConfig) (*Session, error) {
	repeat := cfg.Repeat
	if repeat == 0 {
		repeat = 1
	}
	if err := protocol.ValidateRepeat(repeat); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}

	return &Session{
		driver:  driver,
		out:     out,
		at:      cfg.Time,
		repeat:  repeat,
		builder: x509chain.NewBuilder(),
		summary: cfg.Summary,
	}, nil
}

// Run reads lines from r until end of input, a fatal error, or ctx is done.
// A final line without a trailing newline is still processed.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := br.ReadString('\n')
		if line != "" {
			if err := s.HandleLine(line); err != nil {
				return err
			}
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("bench: failed to read input: %w", readErr)
		}
	}
}

// HandleLine parses and applies a single input line.
func (s *Session) HandleLine(line string) error {
	cmd, err := protocol.Parse(line)
	if err != nil {
		return err
	}
	return s.Handle(cmd)
}

// Handle applies a parsed command. Validation commands run synchronously
// and write their result before Handle returns.
func (s *Session) Handle(cmd protocol.Command) error {
	switch cmd.Kind {
	case protocol.KindLeaf:
		if err := s.builder.SetLeaf(cmd.Arg); err != nil {
			return chainError(cmd.Line, err)
		}
	case protocol.KindIntermediate:
		if err := s.builder.AddIntermediate(cmd.Arg); err != nil {
			return chainError(cmd.Line, err)
		}
	case protocol.KindRepeat:
		s.repeat = cmd.Repeat
	case protocol.KindValidate, protocol.KindDomain:
		return s.validate(cmd)
	default:
		return protocol.NewError(protocol.ReasonUnknownCommand, cmd.Line, nil)
	}
	return nil
}

// Repeat returns the trial count the next validation will use.
func (s *Session) Repeat() int { return s.repeat }

// Pending returns how many certificate texts are waiting for a validation.
func (s *Session) Pending() int { return s.builder.Len() }

func (s *Session) validate(cmd protocol.Command) error {
	bundle, err := s.builder.Take()
	if err != nil {
		return chainError(cmd.Line, err)
	}

	params := verify.NewParams(s.at)
	if cmd.Kind == protocol.KindDomain {
		params = params.WithHostname(cmd.Arg)
	}

	res, err := s.driver.Run(bundle, params, s.repeat)
	if err != nil {
		return err
	}

	if err := WriteResult(s.out, res); err != nil {
		return fmt.Errorf("bench: failed to write result: %w", err)
	}

	s.count++
	if s.summary != nil {
		s.summary.Add(Record{
			Index:        s.count,
			Command:      cmd.Line,
			ChainLen:     bundle.Len(),
			Outcome:      res.Outcome,
			Measurements: res.Measurements,
		})
	}
	return nil
}

// chainError converts accumulator ordering failures into protocol errors.
func chainError(line string, err error) error {
	switch {
	case errors.Is(err, x509chain.ErrLeafAlreadySet):
		return protocol.NewError(protocol.ReasonDuplicateLeaf, line, nil)
	case errors.Is(err, x509chain.ErrNoLeaf):
		return protocol.NewError(protocol.ReasonNoLeafYet, line, nil)
	case errors.Is(err, x509chain.ErrChainTooLong):
		return protocol.NewError(protocol.ReasonChainTooLong, line, nil)
	default:
		return err
	}
}
