// Package pyrange provides lazy Python style ranges over numbers and
// iterator-like positions.
package pyrange

import (
	"fmt"
	"iter"
)

type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

type stepKind uint8

const (
	unitForward stepKind = iota
	unitBackward
	elemStep
	intStep
	// the step cannot be represented by the element, it overshoots any
	// stop reachable from start
	stopStep
)

// Range is an immutable, restartable description of a sequence from start
// (inclusive) to stop (exclusive). Every Begin returns an independent
// iterator.
type Range[E any] struct {
	start E
	stop  E
	dir   Direction
	kind  stepKind
	step  E
	n     int
	ops   Ops[E]
}

// Upto returns the range [0, stop).
func Upto[N Number](stop N) Range[N] {
	var zero N
	return Between(zero, stop)
}

// Between returns the range [start, stop) with a unit step.
func Between[N Number](start, stop N) Range[N] {
	return New(NumberOps[N](), start, stop)
}

// Step returns the range from start to stop advancing by an element typed
// step. A negative step iterates backward.
func Step[N Number](start, stop, step N) Range[N] {
	ops := NumberOps[N]()
	var zero N
	c := ops.Compare(step, zero)
	if c == 0 {
		panic(ErrZeroStep)
	}
	dir := Forward
	if c < 0 {
		dir = Backward
	}
	return Range[N]{start: start, stop: stop, dir: dir, kind: elemStep, step: step, ops: ops}
}

// StepInt returns the range from start to stop advancing by a plain integer
// step.
func StepInt[N Number](start, stop N, step int) Range[N] {
	return NewStep(NumberOps[N](), start, stop, step)
}

// Of mirrors Python's range: Of(stop), Of(start, stop) or
// Of(start, stop, step).
func Of[N Number](bounds ...N) Range[N] {
	switch len(bounds) {
	case 1:
		return Upto(bounds[0])
	case 2:
		return Between(bounds[0], bounds[1])
	case 3:
		return Step(bounds[0], bounds[1], bounds[2])
	default:
		panic(fmt.Errorf("%w, got %d", ErrArity, len(bounds)))
	}
}

// Over returns the forward range [start, stop) over positions.
func Over[P Position[P]](start, stop P) Range[P] {
	return New(PositionOps[P](), start, stop)
}

// OverStep returns the range over positions from start to stop moving step
// positions at a time.
func OverStep[P Position[P]](start, stop P, step int) Range[P] {
	return NewStep(PositionOps[P](), start, stop, step)
}

// New returns the forward unit range [start, stop) for any element type
// described by ops.
func New[E any](ops Ops[E], start, stop E) Range[E] {
	return Range[E]{start: start, stop: stop, dir: Forward, kind: unitForward, ops: ops}
}

// NewStep returns the range from start to stop with an integer step.
// Steps of 1 and -1 use the unit increment and decrement of the element;
// any other step displaces it with ops.Add.
func NewStep[E any](ops Ops[E], start, stop E, step int) Range[E] {
	switch {
	case step == 0:
		panic(ErrZeroStep)
	case step == 1:
		return New(ops, start, stop)
	case step == -1:
		return Range[E]{start: start, stop: stop, dir: Backward, kind: unitBackward, ops: ops}
	}
	dir := Forward
	if step < 0 {
		dir = Backward
	}
	kind := intStep
	if ops.Fits != nil && !ops.Fits(step) {
		kind = stopStep
	}
	return Range[E]{start: start, stop: stop, dir: dir, kind: kind, n: step, ops: ops}
}

func (r Range[E]) Start() E             { return r.start }
func (r Range[E]) Stop() E              { return r.stop }
func (r Range[E]) Direction() Direction { return r.dir }

// Begin returns an iterator positioned at start. A start that already
// reached stop in the iteration direction yields an exhausted iterator.
// The zero Range is empty.
func (r Range[E]) Begin() *Iterator[E] {
	r.zeroOps()
	it := &Iterator[E]{cur: r.start, r: &r}
	it.clamp()
	return it
}

// End returns the sentinel iterator positioned at stop. It is never
// dereferenced.
func (r Range[E]) End() *Iterator[E] {
	r.zeroOps()
	return &Iterator[E]{cur: r.stop, r: &r}
}

// All returns the range as a sequence for use with for-range.
func (r Range[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		end := r.End()
		for it := r.Begin(); !it.Equal(end); it.Advance() {
			if !yield(it.cur) {
				return
			}
		}
	}
}

// Slice collects the range.
func (r Range[E]) Slice() []E {
	var s []E
	for v := range r.All() {
		s = append(s, v)
	}
	return s
}

// Len counts the elements by walking the range.
func (r Range[E]) Len() int {
	n := 0
	for range r.All() {
		n++
	}
	return n
}

func (r Range[E]) String() string {
	switch r.kind {
	case unitBackward:
		return fmt.Sprintf("range(%v, %v, -1)", r.start, r.stop)
	case elemStep:
		return fmt.Sprintf("range(%v, %v, %v)", r.start, r.stop, r.step)
	case intStep, stopStep:
		return fmt.Sprintf("range(%v, %v, %d)", r.start, r.stop, r.n)
	default:
		return fmt.Sprintf("range(%v, %v)", r.start, r.stop)
	}
}

func (r *Range[E]) increment(e E) E {
	switch r.kind {
	case unitBackward:
		return r.ops.Dec(e)
	case elemStep:
		return r.ops.Plus(e, r.step)
	case intStep:
		return r.ops.Add(e, r.n)
	case stopStep:
		return r.stop
	default:
		return r.ops.Inc(e)
	}
}

func (r *Range[E]) overflow(e E) bool {
	if r.dir == Forward {
		return r.ops.Compare(e, r.stop) >= 0
	}
	return r.ops.Compare(e, r.stop) <= 0
}

func (r *Range[E]) stalled(prev, next E) bool {
	if r.dir == Forward {
		return r.ops.Compare(next, prev) <= 0
	}
	return r.ops.Compare(next, prev) >= 0
}

// zeroOps makes every element of a zero Range compare equal, so its
// iterators start exhausted.
func (r *Range[E]) zeroOps() {
	if r.ops.Compare == nil {
		r.ops.Compare = func(_, _ E) int { return 0 }
	}
}
