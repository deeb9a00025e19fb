// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"errors"
	"slices"
)

// MaxChainSize is the largest number of certificates (leaf included) a
// single bundle may hold.
const MaxChainSize = 64

var (
	// ErrLeafAlreadySet indicates a second leaf for the same bundle.
	ErrLeafAlreadySet = errors.New("x509chain: leaf read multiple times")

	// ErrNoLeaf indicates an intermediate, or a validation request, before any leaf.
	ErrNoLeaf = errors.New("x509chain: leaf not read yet")

	// ErrChainTooLong indicates that the bundle would exceed [MaxChainSize].
	ErrChainTooLong = errors.New("x509chain: too many certificates in chain")
)

// Bundle is an ordered, immutable sequence of certificate texts.
// Position 0 is the leaf; the rest are intermediates in the order supplied.
type Bundle struct{ texts []string }

// Len returns the number of certificates in the bundle.
func (b Bundle) Len() int { return len(b.texts) }

// Builder accumulates certificate texts for the bundle currently being read.
//
// A Builder enforces the ordering rules of the input protocol: exactly one
// leaf, which must precede every intermediate. Builder is not safe for
// concurrent use; the benchmark loop is sequential.
type Builder struct {
	texts []string
	limit int
}

// NewBuilder returns an empty Builder bounded by [MaxChainSize].
func NewBuilder() *Builder {
	return &Builder{limit: MaxChainSize}
}

// HasLeaf reports whether a leaf has been set since the last reset.
func (b *Builder) HasLeaf() bool { return len(b.texts) > 0 }

// Len returns the number of accumulated certificate texts.
func (b *Builder) Len() int { return len(b.texts) }

// SetLeaf starts a bundle with the given leaf certificate text.
func (b *Builder) SetLeaf(text string) error {
	if b.HasLeaf() {
		return ErrLeafAlreadySet
	}
	b.texts = append(b.texts, text)
	return nil
}

// AddIntermediate appends an intermediate certificate text after the leaf.
func (b *Builder) AddIntermediate(text string) error {
	if !b.HasLeaf() {
		return ErrNoLeaf
	}
	if len(b.texts) >= b.limit {
		return ErrChainTooLong
	}
	b.texts = append(b.texts, text)
	return nil
}

// Snapshot returns the accumulated bundle without clearing the builder.
func (b *Builder) Snapshot() (Bundle, error) {
	if !b.HasLeaf() {
		return Bundle{}, ErrNoLeaf
	}
	return Bundle{texts: slices.Clone(b.texts)}, nil
}

// Reset discards all accumulated certificate texts.
func (b *Builder) Reset() {
	clear(b.texts)
	b.texts = b.texts[:0]
}

// Take hands the accumulated bundle to the caller and resets the builder,
// so the next leaf always starts a fresh bundle.
func (b *Builder) Take() (Bundle, error) {
	bundle, err := b.Snapshot()
	if err != nil {
		return Bundle{}, err
	}
	b.Reset()
	return bundle, nil
}
