// SPDX-License-Identifier: MIT
// Package: lvlist/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic builders

	"github.com/katalvlaran/lvlist/linkedlist"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// instance before any value is drawn.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange sets the inclusive bounds [lo, hi] for drawn values.
// Panics if lo > hi or if the span does not fit in an int.
// Complexity: O(1) time, O(1) space.
func WithRange(lo, hi int) BuilderOption {
	if lo > hi {
		panic("builder: WithRange(lo > hi)")
	}
	if hi-lo+1 <= 0 {
		panic("builder: WithRange span overflows int")
	}
	return func(c *builderConfig) {
		c.lo, c.hi = lo, hi
	}
}

// WithListOptions forwards opts to every list built by RandomList and
// SortedList (e.g. linkedlist.WithMaxRecursionDepth).
// Complexity: O(len(opts)) time and space.
func WithListOptions(opts ...linkedlist.Option) BuilderOption {
	return func(c *builderConfig) {
		c.listOpts = append(c.listOpts, opts...)
	}
}
