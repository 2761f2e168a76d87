package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is raised when an allocator is asked for an operation
	// outside its Caps.
	ErrUnsupported = errors.New("alloc: operation not supported")
	// ErrExhausted is raised when backing memory cannot be obtained.
	ErrExhausted = errors.New("alloc: out of memory")
	// ErrEmpty is raised when popping from an empty Array.
	ErrEmpty = errors.New("alloc: array is empty")
	// ErrReleased is raised on use of a released Arena.
	ErrReleased = errors.New("alloc: use after Release")
	// ErrInvalidSize is raised for negative sizes and zero-sized element types.
	ErrInvalidSize = errors.New("alloc: invalid size")
	// ErrPointerElem is raised when a typed view is requested for an element
	// type that contains Go pointers.
	ErrPointerElem = errors.New("alloc: element type contains pointers")
)

// FatalError describes a violated allocator contract or exhausted memory.
// It is never returned; it is the value of the panic raised by Fatal.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal panics with a *FatalError.
func Fatal(op string, err error) {
	panic(&FatalError{Op: op, Err: err})
}

// AsFatal extracts a *FatalError from a recovered panic value.
func AsFatal(r any) (*FatalError, bool) {
	err, ok := r.(error)
	if !ok {
		return nil, false
	}
	var fe *FatalError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
