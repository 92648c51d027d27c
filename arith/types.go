// SPDX-License-Identifier: MIT
// Package: algokit/arith
//
// types.go — options for the recursive variants and the Sign enumeration.

package arith

// DefaultMaxRecursionDepth bounds the call depth of the recursive variants
// when no option overrides it. Far below the default goroutine stack limit.
const DefaultMaxRecursionDepth = 10000

// Option configures the recursive variants (FactorialRecursive, PowerRecursive).
type Option func(*Options)

// Options holds the knobs shared by the recursive variants.
type Options struct {
	// MaxRecursionDepth is the deepest call chain a recursive variant may
	// build. The top-level call counts as depth 1.
	MaxRecursionDepth int
}

// DefaultOptions returns Options with MaxRecursionDepth = DefaultMaxRecursionDepth.
func DefaultOptions() Options {
	return Options{MaxRecursionDepth: DefaultMaxRecursionDepth}
}

// WithMaxRecursionDepth sets the recursion bound.
// Panics if d < 1: a bound that forbids the top-level call is a programmer error.
func WithMaxRecursionDepth(d int) Option {
	if d < 1 {
		panic("arith: WithMaxRecursionDepth(d<1)")
	}
	return func(o *Options) {
		o.MaxRecursionDepth = d
	}
}

// newOptions applies opts over the defaults in order (last wins).
func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Sign classifies an integer as negative, zero or positive.
type Sign int

const (
	Negative Sign = iota - 1 // x < 0
	Zero                     // x == 0
	Positive                 // x > 0
)

// String returns "Negative", "Zero" or "Positive".
func (s Sign) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Positive:
		return "Positive"
	default:
		return "Zero"
	}
}
