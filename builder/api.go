// SPDX-License-Identifier: MIT
// Package: lvlist/builder
//
// api.go - public constructors for integer fixtures.
//
// Design contract (strict):
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same n, options and seed ⇒ identical values in identical order.
//   - Safety: never panic; return sentinel errors wrapped with the method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlist/linkedlist"
)

// RandomInts returns n values drawn uniformly from the configured inclusive
// range. n == 0 yields an empty slice without touching any RNG.
//
// Errors: ErrTooFewValues if n < 0; ErrNeedRandSource if n > 0 and neither
// WithSeed nor WithRand was given.
// Complexity: O(n) time, O(n) space.
func RandomInts(n int, opts ...BuilderOption) ([]int, error) {
	cfg := newBuilderConfig(opts...)

	return drawInts(methodRandomInts, n, cfg)
}

// RandomList returns a new list holding RandomInts(n, opts...) in draw order.
// Complexity: O(n) time, O(n) space.
func RandomList(n int, opts ...BuilderOption) (*linkedlist.List[int], error) {
	cfg := newBuilderConfig(opts...)
	values, err := drawInts(methodRandomList, n, cfg)
	if err != nil {
		return nil, err
	}

	return fill(values, cfg), nil
}

// SortedList returns a RandomList sorted ascending with SortIterative.
// Complexity: O(n log n) time, O(n) space.
func SortedList(n int, opts ...BuilderOption) (*linkedlist.List[int], error) {
	cfg := newBuilderConfig(opts...)
	values, err := drawInts(methodSortedList, n, cfg)
	if err != nil {
		return nil, err
	}

	l := fill(values, cfg)
	if err = l.SortIterative(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSortedList, err)
	}

	return l, nil
}

// drawInts validates n and the RNG, then draws n values from [cfg.lo, cfg.hi].
func drawInts(method string, n int, cfg builderConfig) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", method, n, ErrTooFewValues)
	}
	if n > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	span := cfg.hi - cfg.lo + 1
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.lo + cfg.rng.Intn(span)
	}

	return out, nil
}

// fill stores values, in order, in a new list built with cfg.listOpts.
// Prepending from the back keeps construction linear.
func fill(values []int, cfg builderConfig) *linkedlist.List[int] {
	l := linkedlist.New[int](cfg.listOpts...)
	for i := len(values) - 1; i >= 0; i-- {
		l.Prepend(values[i])
	}

	return l
}
