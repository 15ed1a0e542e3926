package pyrange

// Iterator is the mutable position of a walk over a Range. Once the current
// element reaches or passes the stop bound it is clamped to exactly stop,
// so termination is an equality test against Range.End.
type Iterator[E any] struct {
	cur E
	r   *Range[E]
}

// Advance moves to the next element and returns the iterator. An
// exhausted iterator stays exhausted.
func (r *Iterator[E]) Advance() *Iterator[E] {
	if r.Done() {
		return r
	}
	next := r.r.increment(r.cur)
	if r.r.stalled(r.cur, next) {
		// wrapped around or made no progress
		r.cur = r.r.stop
		return r
	}
	r.cur = next
	r.clamp()
	return r
}

// Copy returns an independent iterator at the same position.
func (r *Iterator[E]) Copy() *Iterator[E] {
	return &Iterator[E]{cur: r.cur, r: r.r}
}

// Value returns the current element. It panics with ErrExhausted once the
// iterator reached stop.
func (r *Iterator[E]) Value() E {
	if r.r.overflow(r.cur) {
		panic(ErrExhausted)
	}
	return r.cur
}

// Equal reports whether both iterators sit on the same element.
func (r *Iterator[E]) Equal(other *Iterator[E]) bool {
	return r.r.ops.Compare(r.cur, other.cur) == 0
}

func (r *Iterator[E]) Done() bool {
	return r.r.ops.Compare(r.cur, r.r.stop) == 0
}

func (r *Iterator[E]) clamp() {
	if r.r.overflow(r.cur) {
		r.cur = r.r.stop
	}
}
