// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/protocol"
	x509certs "github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/roots"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/verify"
)

// Clock reports the current time. The default is [time.Now], whose
// monotonic reading makes measurements immune to wall-clock steps.
type Clock func() time.Time

// Timing selects what a trial measurement brackets.
type Timing string

const (
	// TimingVerify measures only the verifier call.
	TimingVerify Timing = "verify"
	// TimingTrial measures decode, parse and verify together.
	TimingTrial Timing = "trial"
)

// ParseTiming validates a timing mode name.
func ParseTiming(s string) (Timing, error) {
	switch t := Timing(s); t {
	case TimingVerify, TimingTrial:
		return t, nil
	default:
		return "", fmt.Errorf("bench: unknown timing mode %q (want %q or %q)", s, TimingVerify, TimingTrial)
	}
}

// Options configures a [Driver]. Zero values select the defaults.
type Options struct {
	Verifier  verify.Verifier
	Codec     *x509certs.Certificate
	Clock     Clock
	Timing    Timing
	RawErrors bool
}

// Result is the outcome of the final trial plus every trial's measurement.
type Result struct {
	Outcome      Outcome
	Measurements []time.Duration
}

// Driver runs repeated validations of a bundle against a trust store.
type Driver struct {
	store     *roots.Store
	verifier  verify.Verifier
	codec     *x509certs.Certificate
	clock     Clock
	timing    Timing
	rawErrors bool
}

// NewDriver returns a Driver validating against store.
func NewDriver(store *roots.Store, opts Options) *Driver {
	d := &Driver{
		store:     store,
		verifier:  opts.Verifier,
		codec:     opts.Codec,
		clock:     opts.Clock,
		timing:    opts.Timing,
		rawErrors: opts.RawErrors,
	}
	if d.verifier == nil {
		d.verifier = verify.NewX509Verifier()
	}
	if d.codec == nil {
		d.codec = x509certs.New()
	}
	if d.clock == nil {
		d.clock = time.Now
	}
	if d.timing == "" {
		d.timing = TimingVerify
	}
	return d
}

// Run validates bundle repeat times, one trial after another.
//
// Every trial decodes and parses the bundle from scratch before calling the
// verifier. The returned outcome is the final trial's; measurements are kept
// for all trials in order. Validation failures are reported in the outcome,
// never as an error; an error means the request itself was unusable.
func (d *Driver) Run(bundle x509chain.Bundle, params verify.Params, repeat int) (Result, error) {
	if bundle.Len() == 0 {
		return Result{}, x509chain.ErrNoLeaf
	}
	if err := protocol.ValidateRepeat(repeat); err != nil {
		return Result{}, fmt.Errorf("bench: %w", err)
	}

	res := Result{Measurements: make([]time.Duration, repeat)}
	for i := range repeat {
		res.Outcome, res.Measurements[i] = d.trial(bundle, params)
	}
	return res, nil
}

func (d *Driver) trial(bundle x509chain.Bundle, params verify.Params) (Outcome, time.Duration) {
	trialStart := d.clock()

	ch, err := x509chain.Parse(bundle, d.codec)
	if err != nil {
		if d.timing == TimingTrial {
			return Failure(TokenParseError), elapsed(trialStart, d.clock())
		}
		return Failure(TokenParseError), 0
	}

	start := d.clock()
	err = d.verifier.Verify(ch, d.store, params)
	end := d.clock()

	if d.timing == TimingTrial {
		start = trialStart
	}
	return d.outcome(err), elapsed(start, end)
}

func (d *Driver) outcome(err error) Outcome {
	if err == nil {
		return Success()
	}
	return Failure(verify.Describe(err, d.rawErrors))
}

// elapsed truncates to whole microseconds and never goes negative.
func elapsed(start, end time.Time) time.Duration {
	d := end.Sub(start).Truncate(time.Microsecond)
	if d < 0 {
		return 0
	}
	return d
}
