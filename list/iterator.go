package list

// Iterator is a non-owning cursor over a [List].
//
// An iterator is valid only while the list it came from is alive and
// structurally unmodified. Using an iterator after the list changed is
// undefined behavior; this is not detected at runtime.
//
// End-position iterators compare equal to each other regardless of list.
type Iterator[T any] struct {
	curr *node[T]
}

// Advance moves the cursor to the next element.
// Advancing past the end position panics.
func (it *Iterator[T]) Advance() {
	if it.curr == nil {
		panic("list: Advance past end position")
	}

	it.curr = it.curr.next
}

// NotEqual reports whether the two iterators reference different elements.
func (it Iterator[T]) NotEqual(other Iterator[T]) bool {
	return it.curr != other.curr
}

// AtEnd reports whether the iterator is at the end position.
func (it Iterator[T]) AtEnd() bool {
	return it.curr == nil
}

// Deref returns a reference to the element the cursor is positioned at.
// Mutation through the reference mutates the element value in place; it
// never affects the list structure. Dereferencing the end position panics.
func (it Iterator[T]) Deref() *T {
	if it.curr == nil {
		panic("list: Deref of end position")
	}

	return &it.curr.val
}

// Skip advances the cursor offset times. The caller must ensure at least
// offset elements remain ahead; overrunning the chain panics on the
// advance that crosses the end position.
func (it *Iterator[T]) Skip(offset int) {
	for range offset {
		it.Advance()
	}
}
