package sequence

import "fmt"

// InvariantError reports a programmer error: an empty-tree query, or a
// structural invariant that can never occur under correct tag
// composition. There is no recoverable error class in this package —
// every public operation that can fail does so by panicking with an
// *InvariantError, which a caller may recover and inspect with
// errors.As.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sequence: %s: %s", e.Op, e.Msg)
}

func fail(op, msg string) {
	panic(&InvariantError{Op: op, Msg: msg})
}
