// SPDX-License-Identifier: MIT
// Package: lvlist/linkedlist
//
// options.go — functional options for List construction.

package linkedlist

// DefaultMaxRecursionDepth is the recursion limit applied when no
// WithMaxRecursionDepth option is given. ReverseRecursive recurses once per
// node, so lists longer than this must use ReverseIterative.
const DefaultMaxRecursionDepth = 1 << 20

// Options holds the configurable parameters of a List.
type Options struct {
	// MaxRecursionDepth bounds the call depth of ReverseRecursive and
	// SortRecursive. Exceeding it yields ErrRecursionDepth instead of a
	// fatal stack overflow. Must be ≥ 1.
	MaxRecursionDepth int
}

// Option configures a List at construction time.
type Option func(*Options)

// DefaultOptions returns Options with MaxRecursionDepth = DefaultMaxRecursionDepth.
func DefaultOptions() Options {
	return Options{
		MaxRecursionDepth: DefaultMaxRecursionDepth,
	}
}

// WithMaxRecursionDepth sets the recursion limit for the recursive variants.
// Panics if limit < 1: a list that can never recurse is a programming error.
func WithMaxRecursionDepth(limit int) Option {
	if limit < 1 {
		panic("linkedlist: WithMaxRecursionDepth(limit < 1)")
	}
	return func(o *Options) {
		o.MaxRecursionDepth = limit
	}
}

// resolveOptions applies opts in order on top of DefaultOptions.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// maxDepth returns the effective recursion limit; the zero List uses the default.
func (o Options) maxDepth() int {
	if o.MaxRecursionDepth < 1 {
		return DefaultMaxRecursionDepth
	}

	return o.MaxRecursionDepth
}
