// SPDX-License-Identifier: MIT

package linkedlist

// MergeSorted merges two lists that are each in ascending order into one
// ascending list, relinking their nodes instead of copying payloads.
//
// The merge is stable across inputs: on equal elements the node from a
// precedes the node from b. Either input may be empty or nil; the result
// then holds the other list's chain unchanged.
//
// MergeSorted consumes its inputs. On success every node is moved into the
// returned list and a and b are left empty. The result uses a's comparator
// and options, or b's when a has no comparator. When neither has one and a
// comparison is needed, it returns ErrUnordered and leaves both inputs intact.
// Complexity: Time O(|a|+|b|), Memory O(1).
func MergeSorted[T comparable](a, b *List[T]) (*List[T], error) {
	if a == nil {
		a = &List[T]{}
	}
	if b == nil || b == a {
		b = &List[T]{} // a list merged with itself keeps its own chain
	}

	out := &List[T]{compare: a.compare, opts: a.opts}
	if out.compare == nil && b.compare != nil {
		out.compare, out.opts = b.compare, b.opts
	}
	if a.head != nil && b.head != nil && out.compare == nil {
		return nil, unorderedError(methodMergeSorted)
	}

	var head *Node[T]
	switch {
	case a.head == nil:
		head = b.head
	case b.head == nil:
		head = a.head
	default:
		head, _ = mergeRuns(a.head, b.head, out.compare)
	}
	out.head = head
	out.len = a.len + b.len

	// Hand ownership of every node over to the result.
	for cur := out.head; cur != nil; cur = cur.next {
		cur.list = out
	}
	a.head, a.len = nil, 0
	b.head, b.len = nil, 0

	return out, nil
}
