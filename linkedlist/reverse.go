// SPDX-License-Identifier: MIT

package linkedlist

// ReverseIterative reverses l in place with three rolling references
// (previous, current, next), flipping every forward link once.
// Complexity: Time O(n), Memory O(1).
func (l *List[T]) ReverseIterative() {
	var prev *Node[T]
	cur := l.head
	for cur != nil {
		next := cur.next // keep the rest of the chain
		cur.next = prev  // flip the link
		prev = cur
		cur = next
	}
	l.head = prev
}

// ReverseRecursive reverses l in place by recursing once per node and
// rewiring each link as the call unwinds. It produces the same chain as
// ReverseIterative.
//
// Recursion depth equals Len(). If that exceeds Options.MaxRecursionDepth
// it returns a wrapped ErrRecursionDepth without touching l; use
// ReverseIterative for such lists.
// Complexity: Time O(n), Memory O(n) stack.
func (l *List[T]) ReverseRecursive() error {
	if limit := l.opts.maxDepth(); l.len > limit {
		return depthError(methodReverseRecursive, l.len, limit)
	}
	l.head = reverseFrom(l.head)

	return nil
}

// reverseFrom recurses to the tail of the chain starting at n, then on the
// way back up makes each successor point at its predecessor. It returns the
// new head, which is the old tail.
func reverseFrom[T comparable](n *Node[T]) *Node[T] {
	if n == nil || n.next == nil {
		return n
	}
	newHead := reverseFrom(n.next)
	n.next.next = n
	n.next = nil

	return newHead
}
