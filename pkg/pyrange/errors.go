package pyrange

import "errors"

// Contract violations. They are raised with panic and can be matched with
// errors.Is after a recover.
var (
	ErrZeroStep  = errors.New("pyrange: step must not be zero")
	ErrExhausted = errors.New("pyrange: dereference of an exhausted iterator")
	ErrArity     = errors.New("pyrange: range takes 1 to 3 bounds")
)
