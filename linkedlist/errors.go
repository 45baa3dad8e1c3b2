// SPDX-License-Identifier: MIT
// Package: lvlist/linkedlist
//
// errors.go — sentinel errors for the linkedlist package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w, never by rewording
//     the sentinel itself.
//   • Algorithms do not panic. Option constructors may.

package linkedlist

import (
	"errors"
	"fmt"
)

// ErrUnordered indicates that an operation needed to compare two elements
// but the list was built without a comparator (zero List or NewFunc(nil)).
// Usage: if errors.Is(err, ErrUnordered) { /* construct with New or NewFunc */ }.
var ErrUnordered = errors.New("linkedlist: no ordering defined for elements")

// ErrRecursionDepth indicates that a recursive algorithm would recurse deeper
// than Options.MaxRecursionDepth. The list is not modified when it is returned.
// Usage: if errors.Is(err, ErrRecursionDepth) { /* fall back to the iterative variant */ }.
var ErrRecursionDepth = errors.New("linkedlist: recursion depth limit exceeded")

// Method tags used as error prefixes.
const (
	methodReverseRecursive = "ReverseRecursive"
	methodSortIterative    = "SortIterative"
	methodSortRecursive    = "SortRecursive"
	methodMergeSorted      = "MergeSorted"
	methodIsSorted         = "IsSorted"
	methodUnmarshalYAML    = "UnmarshalYAML"
)

// depthError wraps ErrRecursionDepth with the method name, the depth that
// would be needed and the configured limit.
func depthError(method string, need, limit int) error {
	return fmt.Errorf("%s: depth %d > limit %d: %w", method, need, limit, ErrRecursionDepth)
}

// unorderedError wraps ErrUnordered with the method name.
func unorderedError(method string) error {
	return fmt.Errorf("%s: %w", method, ErrUnordered)
}
