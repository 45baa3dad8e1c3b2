// SPDX-License-Identifier: MIT

// Package builder produces deterministic integer fixtures for the linkedlist
// package: random value slices, random lists and pre-sorted lists.
//
// Randomness is never global. Every stochastic call needs an explicit
// *rand.Rand, supplied through WithSeed or WithRand, so the same seed and
// options always produce the same data.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed, WithRand: RNG selection (required for n > 0).
//     – WithRange: inclusive value bounds, default [1, 100].
//     – WithListOptions: linkedlist options forwarded to built lists.
//   - Constructors:
//     – RandomInts(n):  n values drawn uniformly from the range.
//     – RandomList(n):  the same values appended to a new list.
//     – SortedList(n):  a RandomList sorted with SortIterative.
//
// Errors:
//
//   - ErrTooFewValues    n < 0
//   - ErrNeedRandSource  n > 0 and no RNG configured
//
// Option constructors panic on meaningless arguments (WithRand(nil),
// WithRange with lo > hi); constructors themselves never panic.
package builder
