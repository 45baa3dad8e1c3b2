// SPDX-License-Identifier: MIT

// Package linkedlist implements a generic singly linked list with in-place
// reversal, merge sort and sorted-merge algorithms.
//
// What:
//
//   - List[T]: a forward chain of *Node[T] owned through a single head.
//   - Mutation: Append, Prepend, InsertBefore, InsertAfter, Delete, Clear.
//   - Query: Find, Len, Head, All, Values, Slice, String, IsSorted.
//   - Reversal: ReverseIterative (three rolling references) and
//     ReverseRecursive (rewires on the way back up the call stack).
//   - Sorting: SortIterative (bottom-up, sentinel-anchored runs of
//     1, 2, 4, …) and SortRecursive (slow/fast midpoint split).
//   - MergeSorted: relinks two ascending lists into one, consuming both.
//   - Clone: independent deep copy of the chain.
//
// Why:
//
//   - Pointer rewiring is done in place. Reversal and merging never copy
//     payloads and never allocate nodes for them.
//   - Each algorithm comes in an iterative and a recursive form. The
//     iterative forms are the ones to use on large inputs.
//
// Ordering:
//
//   - New and Of order elements with cmp.Compare. NewFunc accepts any
//     three-way comparator. The zero List has no order: sorting or merging
//     it returns ErrUnordered the first time two elements must be compared.
//   - All sorts and merges are stable. On ties the element from the left
//     run (or from the first list in MergeSorted) comes first.
//
// Complexity:
//
//   - Append, Find, Delete, InsertBefore:  Time O(n), Memory O(1)
//   - Prepend, InsertAfter:                Time O(1), Memory O(1)
//   - ReverseIterative:                    Time O(n), Memory O(1)
//   - ReverseRecursive:                    Time O(n), Memory O(n) stack
//   - SortIterative:                       Time O(n log n), Memory O(1)
//   - SortRecursive:                       Time O(n log n), Memory O(log n) stack
//   - MergeSorted:                         Time O(|a|+|b|), Memory O(1)
//
// Errors:
//
//   - ErrUnordered       the list has no comparator but a comparison is required
//   - ErrRecursionDepth  a recursive variant would exceed Options.MaxRecursionDepth;
//     the list is left unchanged
//
// Not-found conditions (Find, Delete, InsertBefore, InsertAfter) are reported
// through nil or false results, never through errors.
//
// Concurrency:
//
//	A List is not safe for concurrent use. Callers that share one must
//	serialize access themselves, e.g. with a sync.Mutex around every call.
package linkedlist
