// Package lvlist is a small, dependency-light playground for singly linked
// list algorithms: in-place reversal, bottom-up and top-down merge sort, and
// stable merging of sorted chains.
//
// Under the hood, everything is organized under two subpackages:
//
//	linkedlist/ — generic List/Node types, mutation, search, reversal, sorting, merging
//	builder/    — deterministic, explicitly seeded integer fixtures for lists
//
// Quick ASCII example:
//
//	head → 5 → 3 → 8 → 1 → nil
//
// after SortIterative becomes
//
//	head → 1 → 3 → 5 → 8 → nil
//
// with the same four nodes relinked, never copied.
//
// A runnable walkthrough lives in examples/.
//
//	go get github.com/katalvlaran/lvlist/linkedlist
package lvlist
