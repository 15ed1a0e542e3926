package pyrange

import "cmp"

// SliceIter is a Position over the elements of a slice. Reverse iterators
// walk toward lower indices. Moving past either end is allowed; only
// Value and Ptr require an index inside the slice.
type SliceIter[T any] struct {
	s       []T
	i       int
	reverse bool
}

// Begin returns a forward position at the first element of s.
func Begin[T any](s []T) SliceIter[T] { return SliceIter[T]{s: s} }

// End returns a forward position one past the last element of s.
func End[T any](s []T) SliceIter[T] { return SliceIter[T]{s: s, i: len(s)} }

// At returns a forward position at index i of s.
func At[T any](s []T, i int) SliceIter[T] { return SliceIter[T]{s: s, i: i} }

// RBegin returns a reverse position at the last element of s.
func RBegin[T any](s []T) SliceIter[T] {
	return SliceIter[T]{s: s, i: len(s) - 1, reverse: true}
}

// REnd returns a reverse position one before the first element of s.
func REnd[T any](s []T) SliceIter[T] {
	return SliceIter[T]{s: s, i: -1, reverse: true}
}

func (r SliceIter[T]) Index() int { return r.i }
func (r SliceIter[T]) Value() T   { return r.s[r.i] }
func (r SliceIter[T]) Ptr() *T    { return &r.s[r.i] }

func (r SliceIter[T]) Next() SliceIter[T] { return r.Advance(1) }
func (r SliceIter[T]) Prev() SliceIter[T] { return r.Advance(-1) }

func (r SliceIter[T]) Advance(n int) SliceIter[T] {
	if r.reverse {
		n = -n
	}
	r.i += n
	return r
}

// Compare orders positions of the same slice in iteration order.
func (r SliceIter[T]) Compare(other SliceIter[T]) int {
	if r.reverse {
		return cmp.Compare(other.i, r.i)
	}
	return cmp.Compare(r.i, other.i)
}
