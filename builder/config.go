// SPDX-License-Identifier: MIT
// Package: lvlist/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng      = nil     (constructors with n > 0 reject it)
//   • lo, hi   = 1, 100
//   • listOpts = none    (linkedlist.DefaultOptions)

package builder

import (
	"math/rand" // RNG for stochastic builders

	"github.com/katalvlaran/lvlist/linkedlist"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Inclusive value bounds.
	lo, hi int
	// Options forwarded to linkedlist.New.
	listOpts []linkedlist.Option
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultMin = 1   // smallest drawn value
	DefaultMax = 100 // largest drawn value
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng: nil,
		lo:  DefaultMin,
		hi:  DefaultMax,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
