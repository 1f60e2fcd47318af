package record

import "iter"

// List is the ordered collection backing every repeatable field: soft-pointer
// handles, comment lines, layer names. Decoding only appends and encoding
// only walks forward once, so the collection supports exactly that: push,
// forward iteration, release.
//
// The on-wire shape of a repeated field is a chain of same-code tags; the
// in-memory shape is a growable slice. Only the external serialization order
// is contractual.
type List[T any] struct {
	items []T
}

// PushBack appends a value, preserving input order.
func (l *List[T]) PushBack(v T) {
	l.items = append(l.items, v)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// First returns the first element.
// The second return value is false when the list is empty.
func (l *List[T]) First() (T, bool) {
	if len(l.items) == 0 {
		var zero T
		return zero, false
	}

	return l.items[0], true
}

// At returns the element at the given zero-based index.
// The second return value is false when the index is out of range.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}

	return l.items[i], true
}

// All returns a forward iterator over the elements in input order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Release drops every element. The backing storage is freed for collection;
// the list itself is reusable afterwards.
func (l *List[T]) Release() {
	l.items = nil
}
