package core

import "fmt"

// IOError wraps every stream, terminal, process and temp-file failure
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO returns nil for a nil err, err itself when it already is an
// *IOError, and an *IOError for op otherwise
func WrapIO(op string, err error) error {
	if err == nil {
		return nil
	}

	if ioErr, ok := err.(*IOError); ok {
		return ioErr
	}

	return &IOError{Op: op, Err: err}
}
