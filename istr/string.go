package istr

import (
	"errors"
	"fmt"
	"slices"
)

// Shape errors reported by New.
var (
	// ErrNoFragments is reported when construction is attempted with zero
	// fragments. Even the empty instance carries one (empty) fragment.
	ErrNoFragments = errors.New("istr: at least one fragment is required")

	// ErrShape is reported when the fragment and value counts do not satisfy
	// len(fragments) == len(values) or len(fragments) == len(values)+1.
	ErrShape = errors.New("istr: fragment/value counts out of shape")
)

// String is an immutable interpolated string: ordered literal fragments with
// embedded values between them, rendered to text only on demand. See the
// package documentation for the shape invariant and the textual-identity
// hazard.
type String struct {
	fragments []string
	values    []any
}

// Empty is the shared empty instance: a single empty fragment and no values.
// It is stateless and side-effect-free, so one process-wide instance is safe
// to share. Concatenating with it introduces no artifacts.
var Empty = &String{fragments: []string{""}}

// New builds an interpolated string from the given fragments and values. The
// slices are retained, not copied: callers must treat them as frozen from
// this point on. New fails when no fragment is supplied or when the counts
// violate the shape invariant.
func New(fragments []string, values []any) (*String, error) {
	if len(fragments) == 0 {
		return nil, ErrNoFragments
	}
	if d := len(fragments) - len(values); d != 0 && d != 1 {
		return nil, fmt.Errorf("%w: %d fragments, %d values", ErrShape, len(fragments), len(values))
	}
	return &String{fragments: fragments, values: values}, nil
}

// MustNew is the panic-on-failure variant of New. Use when the shape is
// statically known to be valid, e.g. for literals in tests and generated
// code.
func MustNew(fragments []string, values []any) *String {
	s, err := New(fragments, values)
	if err != nil {
		panic(err)
	}
	return s
}

// Fragments returns a copy of the literal fragments.
func (s *String) Fragments() []string {
	return slices.Clone(s.fragments)
}

// Values returns a copy of the embedded values. The values themselves are
// shared, not cloned.
func (s *String) Values() []any {
	return slices.Clone(s.values)
}

// ValueCount returns the number of embedded values.
func (s *String) ValueCount() int {
	return len(s.values)
}

// Value returns the embedded value at position i.
func (s *String) Value(i int) any {
	return s.values[i]
}
