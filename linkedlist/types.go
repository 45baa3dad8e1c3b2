// SPDX-License-Identifier: MIT

// Package linkedlist defines the Node and List types and their constructors.
package linkedlist

import "cmp"

// Node is a single element of a List: one payload and a link to its successor.
//
// A node belongs to at most one list at a time. Nodes removed by Delete or
// Clear are detached: they report no successor and no owner.
type Node[T comparable] struct {
	// Value is the payload carried by this node.
	Value T

	next *Node[T] // successor in chain order; nil at the tail
	list *List[T] // owning list; nil when detached
}

// NewNode returns a detached node holding v, suitable for FromNode.
func NewNode[T comparable](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Next returns the successor of n, or nil if n is the tail, detached or nil.
func (n *Node[T]) Next() *Node[T] {
	if n == nil || n.list == nil {
		return nil
	}

	return n.next
}

// List is a singly linked list owning the chain that starts at its head.
//
// The zero value is an empty, unordered list ready to use: every operation
// except sorting and merging works on it.
// Complexity of each method is listed in the package documentation.
type List[T comparable] struct {
	head    *Node[T]         // first node, nil when empty
	len     int              // number of nodes reachable from head
	compare func(a, b T) int // three-way order; nil means unordered
	opts    Options          // resolved construction options
}

// New creates an empty list ordered by cmp.Compare.
// Complexity: O(1)
func New[T cmp.Ordered](opts ...Option) *List[T] {
	return &List[T]{compare: cmp.Compare[T], opts: resolveOptions(opts)}
}

// NewFunc creates an empty list ordered by compare, which must return a
// negative number, zero or a positive number when a < b, a == b or a > b.
// A nil compare is accepted; sorting and merging then report ErrUnordered.
// Complexity: O(1)
func NewFunc[T comparable](compare func(a, b T) int, opts ...Option) *List[T] {
	return &List[T]{compare: compare, opts: resolveOptions(opts)}
}

// FromNode creates a list, ordered by cmp.Compare, whose only node is head.
// A nil head yields an empty list. If head currently belongs to another list
// it is first removed from that list; only head itself is adopted.
// Complexity: O(1), or O(m) to unlink head from a previous owner of length m.
func FromNode[T cmp.Ordered](head *Node[T], opts ...Option) *List[T] {
	l := New[T](opts...)
	if head == nil {
		return l
	}
	if head.list != nil {
		head.list.unlink(head)
	}
	l.adopt(head)

	return l
}

// Of creates a list ordered by cmp.Compare containing values in order.
// Complexity: O(len(values))
func Of[T cmp.Ordered](values ...T) *List[T] {
	l := New[T]()
	l.extend(values)

	return l
}

// adopt makes the detached node n the sole content of the empty list l.
func (l *List[T]) adopt(n *Node[T]) {
	n.next = nil
	n.list = l
	l.head = n
	l.len = 1
}

// newNode allocates a node owned by l.
func (l *List[T]) newNode(v T) *Node[T] {
	return &Node[T]{Value: v, list: l}
}

// detach clears the links of a node that has just been removed from l.
func detach[T comparable](n *Node[T]) {
	n.next = nil
	n.list = nil
}
