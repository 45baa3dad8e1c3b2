// SPDX-License-Identifier: MIT

package linkedlist

import "fmt"

// Test bridge: exposes structural checks to linkedlist_test without widening
// the production API.

// CheckChain walks l and reports the first broken structural invariant:
// a cycle or overlong chain, a node owned by another list, or a length that
// disagrees with Len.
func CheckChain[T comparable](l *List[T]) error {
	steps := 0
	for cur := l.head; cur != nil; cur = cur.next {
		steps++
		if steps > l.len {
			return fmt.Errorf("chain longer than len=%d (cycle?)", l.len)
		}
		if cur.list != l {
			return fmt.Errorf("node %d (%v) is not owned by the list", steps-1, cur.Value)
		}
	}
	if steps != l.len {
		return fmt.Errorf("walked %d nodes, len=%d", steps, l.len)
	}

	return nil
}

// IsDetached reports whether n has neither an owner nor a successor.
func IsDetached[T comparable](n *Node[T]) bool {
	return n.list == nil && n.next == nil
}

// SortDepth exposes the recursion depth SortRecursive needs for n nodes.
var SortDepth = sortDepth
