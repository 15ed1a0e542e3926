package pyrange

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number is any element type with native arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Position is an iterator-like element type. Positions are only compared
// against positions of the same sequence.
type Position[P any] interface {
	Next() P
	Prev() P
	Advance(n int) P
	Compare(P) int
}

// Ops describes the operations a range needs on its element type. Compare
// follows cmp.Compare, Add displaces by a plain integer and Plus adds an
// element typed step. Plus is nil when E has no arithmetic. Fits reports
// whether a displacement of n is representable by E; a nil Fits accepts
// every n.
type Ops[E any] struct {
	Compare func(a, b E) int
	Inc     func(e E) E
	Dec     func(e E) E
	Add     func(e E, n int) E
	Plus    func(e, step E) E
	Fits    func(n int) bool
}

func NumberOps[N Number]() Ops[N] {
	return Ops[N]{
		Compare: cmp.Compare[N],
		Inc:     func(e N) N { return e + 1 },
		Dec:     func(e N) N { return e - 1 },
		Add:     func(e N, n int) N { return e + N(n) }, // wraps to e-|n| for unsigned N
		Plus:    func(e, step N) N { return e + step },
		Fits:    fits[N],
	}
}

func PositionOps[P Position[P]]() Ops[P] {
	return Ops[P]{
		Compare: func(a, b P) int { return a.Compare(b) },
		Inc:     func(p P) P { return p.Next() },
		Dec:     func(p P) P { return p.Prev() },
		Add:     func(p P, n int) P { return p.Advance(n) },
	}
}

// fits reports whether n survives the conversion to N. Unsigned types only
// need the magnitude, a negative n wraps back in Add.
func fits[N Number](n int) bool {
	switch {
	case isFloat[N]():
		return true
	case isSigned[N]():
		return int64(N(n)) == int64(n)
	}
	if n < 0 {
		n = -n
		if n < 0 {
			return false
		}
	}
	return uint64(N(n)) == uint64(n)
}

func isFloat[N Number]() bool {
	half := 0.5
	return N(half) != 0
}

func isSigned[N Number]() bool {
	var zero N
	return zero-1 < zero
}
