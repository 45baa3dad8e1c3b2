// SPDX-License-Identifier: MIT

package linkedlist

import (
	"fmt"
	"iter"
	"strings"
)

// separator joins rendered values in String.
const separator = " -> "

// Len returns the number of nodes in l. Complexity: O(1).
func (l *List[T]) Len() int { return l.len }

// IsEmpty reports whether l has no nodes. Complexity: O(1).
func (l *List[T]) IsEmpty() bool { return l.head == nil }

// Head returns the first node of l, or nil if l is empty.
func (l *List[T]) Head() *Node[T] { return l.head }

// Append adds v at the tail of l and returns the new node.
// It walks the whole chain to find the tail.
// Complexity: O(n)
func (l *List[T]) Append(v T) *Node[T] {
	n := l.newNode(v)
	l.len++
	if l.head == nil {
		l.head = n
		return n
	}

	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n

	return n
}

// Prepend adds v as the new head of l and returns the new node.
// Complexity: O(1)
func (l *List[T]) Prepend(v T) *Node[T] {
	n := l.newNode(v)
	n.next = l.head
	l.head = n
	l.len++

	return n
}

// Find returns the first node whose Value equals v, or nil if there is none.
// Complexity: O(n)
func (l *List[T]) Find(v T) *Node[T] {
	n, _ := l.search(v)

	return n
}

// Delete removes the first node whose Value equals v and reports whether a
// node was removed. Deleting an absent value is a no-op.
// Complexity: O(n)
func (l *List[T]) Delete(v T) bool {
	n, prev := l.search(v)
	if n == nil {
		return false
	}
	l.cut(prev, n)

	return true
}

// InsertBefore inserts v immediately before target and returns the new node.
// If target is the head this is Prepend. It returns nil and leaves l
// unchanged when target is nil, belongs to another list or cannot be
// reached from the head.
// Complexity: O(n)
func (l *List[T]) InsertBefore(target *Node[T], v T) *Node[T] {
	if target == nil || target.list != l {
		return nil
	}
	if l.head == target {
		return l.Prepend(v)
	}

	prev := l.predecessor(target)
	if prev == nil {
		return nil
	}
	n := l.newNode(v)
	n.next = target
	prev.next = n
	l.len++

	return n
}

// InsertAfter inserts v immediately after anchor and returns the new node.
// It returns nil and leaves l unchanged when anchor is nil or belongs to
// another list.
// Complexity: O(1)
func (l *List[T]) InsertAfter(anchor *Node[T], v T) *Node[T] {
	if anchor == nil || anchor.list != l {
		return nil
	}
	n := l.newNode(v)
	n.next = anchor.next
	anchor.next = n
	l.len++

	return n
}

// Clear removes every node from l. Removed nodes are detached.
// Complexity: O(n)
func (l *List[T]) Clear() {
	cur := l.head
	for cur != nil {
		next := cur.next
		detach(cur)
		cur = next
	}
	l.head = nil
	l.len = 0
}

// All returns an iterator over the nodes of l in chain order. Each call to
// the returned sequence walks from the head as it is at that moment.
// Mutating l while ranging over it is not supported.
func (l *List[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur) {
				return
			}
		}
	}
}

// Values returns an iterator over the payloads of l in chain order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Slice returns the payloads of l in chain order. An empty list yields an
// empty, non-nil slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.len)
	for v := range l.Values() {
		out = append(out, v)
	}

	return out
}

// String renders l as "v1 -> v2 -> ... -> vn" for debugging. The format is
// not meant to be parsed.
func (l *List[T]) String() string {
	var sb strings.Builder
	for cur := l.head; cur != nil; cur = cur.next {
		if cur != l.head {
			sb.WriteString(separator)
		}
		fmt.Fprint(&sb, cur.Value)
	}

	return sb.String()
}

// Clone returns an independent deep copy of l with the same ordering and
// options. No node is shared between l and the copy.
// Complexity: O(n)
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{compare: l.compare, opts: l.opts}
	var tail *Node[T]
	for cur := l.head; cur != nil; cur = cur.next {
		n := c.newNode(cur.Value)
		if tail == nil {
			c.head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	c.len = l.len

	return c
}

// IsSorted reports whether l is in ascending order under its comparator.
// Lists with fewer than two nodes are sorted; longer unordered lists
// return ErrUnordered.
// Complexity: O(n)
func (l *List[T]) IsSorted() (bool, error) {
	if l.head == nil || l.head.next == nil {
		return true, nil
	}
	if l.compare == nil {
		return false, unorderedError(methodIsSorted)
	}
	for cur := l.head; cur.next != nil; cur = cur.next {
		if l.compare(cur.Value, cur.next.Value) > 0 {
			return false, nil
		}
	}

	return true, nil
}

// extend appends values in order with a single walk to the tail.
func (l *List[T]) extend(values []T) {
	tail := l.head
	for tail != nil && tail.next != nil {
		tail = tail.next
	}
	for _, v := range values {
		n := l.newNode(v)
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
		l.len++
	}
}

// search returns the first node equal to v and its predecessor. When no node
// matches, the returned node is nil.
func (l *List[T]) search(v T) (n, prev *Node[T]) {
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if cur.Value == v {
			return cur, prev
		}
	}

	return nil, nil
}

// predecessor returns the node whose successor is target, or nil.
func (l *List[T]) predecessor(target *Node[T]) *Node[T] {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.next == target {
			return cur
		}
	}

	return nil
}

// cut removes n, whose predecessor is prev (nil when n is the head), and
// detaches it.
func (l *List[T]) cut(prev, n *Node[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	detach(n)
	l.len--
}

// unlink removes the node n from l by identity and reports whether it was found.
func (l *List[T]) unlink(n *Node[T]) bool {
	if l.head == n {
		l.cut(nil, n)
		return true
	}
	prev := l.predecessor(n)
	if prev == nil {
		return false
	}
	l.cut(prev, n)

	return true
}
