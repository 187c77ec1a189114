// Package vector provides an ordered, indexable collection whose elements
// live in addressable backing storage, so callers can exchange them in
// place through pointers.
package vector

import (
	"github.com/daanv2/go-mem"
	"github.com/daanv2/go-mem/pkg/assert"
)

// Vector is not safe for concurrent use.
type Vector[T any] struct {
	elems []T
}

func New[T any](elems ...T) *Vector[T] {
	return &Vector[T]{elems: elems}
}

func (v *Vector[T]) Len() int {
	return len(v.elems)
}

func (v *Vector[T]) Push(e T) {
	v.elems = append(v.elems, e)
}

// Pop removes and returns the last element. The vector must be non-empty.
func (v *Vector[T]) Pop() T {
	assert.Assert(len(v.elems) > 0)

	e := v.elems[len(v.elems)-1]
	v.elems = v.elems[:len(v.elems)-1]
	return e
}

// Borrow returns a pointer to the i'th element's storage. The pointer
// remains valid until the next Push.
func (v *Vector[T]) Borrow(i int) *T {
	assert.InBounds(i, len(v.elems))

	return &v.elems[i]
}

// Swap exchanges the elements at i and j in place.
func (v *Vector[T]) Swap(i, j int) {
	assert.InBounds(i, len(v.elems))
	assert.InBounds(j, len(v.elems))

	mem.Swap(&v.elems[i], &v.elems[j])
}

// Replace installs e at index i and returns the element it displaced.
func (v *Vector[T]) Replace(i int, e T) T {
	assert.InBounds(i, len(v.elems))

	return mem.Replace(&v.elems[i], e)
}
