// SPDX-License-Identifier: MIT
// Package: lvlist/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w: "<Method>: <detail>: <sentinel>".
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewValues indicates that a requested fixture size is negative.
// Usage: if errors.Is(err, ErrTooFewValues) { /* report invalid size */ }.
var ErrTooFewValues = errors.New("builder: value count is negative")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// Method tags used as error prefixes.
const (
	methodRandomInts = "RandomInts"
	methodRandomList = "RandomList"
	methodSortedList = "SortedList"
)
