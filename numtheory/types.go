// SPDX-License-Identifier: MIT
// Package: algokit/numtheory
//
// types.go — options for GCDRecursive.

package numtheory

// DefaultMaxRecursionDepth bounds GCDRecursive. Euclid needs O(log min(a,b))
// frames (under 100 for any int64 pair), so the default is never reached.
const DefaultMaxRecursionDepth = 10000

// Option customizes GCDRecursive.
type Option func(*Options)

// Options holds the recursion bound.
type Options struct {
	MaxRecursionDepth int // top-level call counts as depth 1
}

// DefaultOptions returns Options{MaxRecursionDepth: DefaultMaxRecursionDepth}.
func DefaultOptions() Options {
	return Options{MaxRecursionDepth: DefaultMaxRecursionDepth}
}

// WithMaxRecursionDepth sets the bound. Panics if d < 1.
func WithMaxRecursionDepth(d int) Option {
	if d < 1 {
		panic("numtheory: WithMaxRecursionDepth(d<1)")
	}
	return func(o *Options) {
		o.MaxRecursionDepth = d
	}
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
