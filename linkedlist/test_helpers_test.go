// SPDX-License-Identifier: MIT
// Package linkedlist_test contains shared fixtures for the list tests.
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded via builder, never global rand).
//   • Assert the structural invariants after every mutation, not only contents.

package linkedlist_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/builder"
	"github.com/katalvlaran/lvlist/linkedlist"
)

// requireChain asserts that l holds exactly want (in order) and that its
// chain is well-formed.
func requireChain[T comparable](t *testing.T, l *linkedlist.List[T], want []T) {
	t.Helper()
	require.NoError(t, linkedlist.CheckChain(l))
	if len(want) == 0 {
		require.Empty(t, l.Slice())
		require.True(t, l.IsEmpty())
	} else {
		require.Equal(t, want, l.Slice())
	}
	require.Equal(t, len(want), l.Len())
}

// item is a payload whose order ignores Tag, used to observe stability.
type item struct {
	Key int
	Tag string
}

// byKey orders items by Key only.
func byKey(a, b item) int { return cmp.Compare(a.Key, b.Key) }

// items builds an item list ordered by Key.
func items(values ...item) *linkedlist.List[item] {
	l := linkedlist.NewFunc(byKey)
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// randomInts returns n seeded values in [1, 100]; the seed pins the data.
func randomInts(t testing.TB, n int, seed int64) []int {
	t.Helper()
	values, err := builder.RandomInts(n, builder.WithSeed(seed))
	require.NoError(t, err)

	return values
}

// reversed returns a reversed copy of s.
func reversed[T any](s []T) []T {
	out := slices.Clone(s)
	slices.Reverse(out)

	return out
}

// sortedStable returns a stably sorted copy of s under compare.
func sortedStable[T any](s []T, compare func(a, b T) int) []T {
	out := slices.Clone(s)
	slices.SortStableFunc(out, compare)

	return out
}

// sizes covers the empty list, odd and even lengths, and powers of two
// around the run boundaries of the bottom-up sort.
var sizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 16, 17, 31, 64, 100}
