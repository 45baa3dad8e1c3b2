// SPDX-License-Identifier: MIT

package linkedlist

import "math/bits"

// SortIterative sorts l in ascending order with a bottom-up merge sort.
//
// The chain starts out as runs of length 1. Each pass detaches adjacent
// pairs of runs of the current size, merges them and links the result
// behind a sentinel, doubling the run size (1, 2, 4, …) until a single
// run covers the list. The sort is stable and allocates no nodes; it does
// not recurse, so it is safe on lists of any length.
//
// Lists with fewer than two nodes are left as they are. Otherwise a list
// without a comparator yields ErrUnordered and is not modified.
// Complexity: Time O(n log n), Memory O(1).
func (l *List[T]) SortIterative() error {
	if l.head == nil || l.head.next == nil {
		return nil
	}
	if l.compare == nil {
		return unorderedError(methodSortIterative)
	}

	var sentinel Node[T]
	sentinel.next = l.head
	for size := 1; size < l.len; size *= 2 {
		prev, cur := &sentinel, sentinel.next
		for cur != nil {
			left := cur
			right := splitAfter(left, size)
			cur = splitAfter(right, size)

			head, tail := mergeRuns(left, right, l.compare)
			prev.next = head
			prev = tail
		}
	}
	l.head = sentinel.next

	return nil
}

// SortRecursive sorts l in ascending order with a top-down merge sort: the
// chain is split at its midpoint (found with a slow/fast pointer pair), both
// halves are sorted recursively and then merged. Same stability and
// ordering contract as SortIterative.
//
// Recursion depth is ⌈log2 n⌉+1. If that exceeds Options.MaxRecursionDepth
// it returns a wrapped ErrRecursionDepth without touching l.
// Complexity: Time O(n log n), Memory O(log n) stack.
func (l *List[T]) SortRecursive() error {
	if l.head == nil || l.head.next == nil {
		return nil
	}
	if l.compare == nil {
		return unorderedError(methodSortRecursive)
	}
	if need, limit := sortDepth(l.len), l.opts.maxDepth(); need > limit {
		return depthError(methodSortRecursive, need, limit)
	}
	l.head = mergeSort(l.head, l.compare)

	return nil
}

// sortDepth returns the call depth mergeSort reaches on n ≥ 1 nodes.
func sortDepth(n int) int {
	return bits.Len(uint(n-1)) + 1
}

// mergeSort sorts the detached chain starting at head and returns its new head.
func mergeSort[T comparable](head *Node[T], compare func(x, y T) int) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}

	mid := middle(head)
	right := mid.next
	mid.next = nil // split into [head..mid] and [right..]

	left := mergeSort(head, compare)
	right = mergeSort(right, compare)
	merged, _ := mergeRuns(left, right, compare)

	return merged
}

// middle returns the last node of the first half of the chain at head.
// slow moves one step for every two steps of fast. The first half is never
// shorter than the second, and both are non-empty for two or more nodes.
func middle[T comparable](head *Node[T]) *Node[T] {
	slow, fast := head, head
	for fast.next != nil && fast.next.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	return slow
}

// splitAfter cuts the chain at head after size nodes and returns the head of
// the remainder, or nil if the chain is not longer than size.
func splitAfter[T comparable](head *Node[T], size int) *Node[T] {
	cur := head
	for i := 1; i < size && cur != nil; i++ {
		cur = cur.next
	}
	if cur == nil {
		return nil
	}
	rest := cur.next
	cur.next = nil

	return rest
}

// mergeRuns relinks two ascending chains into one and returns its head and
// tail. On ties the node from a comes first (<= keeps the left run ahead).
// A temporary sentinel anchors the result and is unlinked before returning.
// Both results are nil when a and b are both empty.
func mergeRuns[T comparable](a, b *Node[T], compare func(x, y T) int) (head, tail *Node[T]) {
	var sentinel Node[T]
	tail = &sentinel
	for a != nil && b != nil {
		if compare(a.Value, b.Value) <= 0 {
			tail.next, a = a, a.next
		} else {
			tail.next, b = b, b.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	for tail.next != nil {
		tail = tail.next
	}

	head = sentinel.next
	sentinel.next = nil
	if head == nil {
		return nil, nil
	}

	return head, tail
}
