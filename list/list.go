package list

import (
	"iter"

	"github.com/movable-go/movable/metrics"
)

// List is a singly linked, head-inserted list.
// The zero value is an empty list ready to use.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	head *node[T]
	len  int
}

// node is an element in the list. The chain rooted at the list head owns
// every node; prev is head-insertion bookkeeping, never a second owner.
type node[T any] struct {
	next *node[T]
	prev *node[T]
	val  T
}

// InsertAtHead adds a new element as the new first element of the list.
// Structural mutation invalidates live iterators (see [Iterator]).
func (l *List[T]) InsertAtHead(val T) {
	elem := &node[T]{val: val, next: l.head}

	if l.head != nil {
		l.head.prev = elem
	}

	l.head = elem
	l.len++

	metrics.AddNodeAllocated(1)
	metrics.IncHeadInsert()
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty checks if the list is empty.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Clear releases every node in forward order and resets the list to empty.
// Each node is unlinked exactly once; nodes are unreachable afterward.
func (l *List[T]) Clear() {
	released := 0

	for e := l.head; e != nil; {
		next := e.next
		e.next = nil
		e.prev = nil
		e = next
		released++
	}

	l.head = nil
	l.len = 0

	metrics.AddNodeReleased(released)
}

// Begin returns an iterator positioned at the first element, or the
// end position if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{curr: l.head}
}

// End returns the end-position iterator. It is used only for comparison
// and must never be dereferenced.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// All returns an iterator for all elements in the list.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.val) {
				return
			}
		}
	}
}
