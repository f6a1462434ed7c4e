package input

import (
	"fmt"
)

// Operation identifies the stage of a read at which a failure occurred.
type Operation uint8

const (
	// OperationWrite indicates that writing the prompt failed.
	OperationWrite Operation = iota
	// OperationFlush indicates that flushing the prompt failed.
	OperationFlush
	// OperationRead indicates that reading from the input stream failed.
	OperationRead
	// OperationDecode indicates that the line read was not valid UTF-8.
	OperationDecode
)

// String provides a human-readable representation of an operation.
func (o Operation) String() string {
	switch o {
	case OperationWrite:
		return "write prompt"
	case OperationFlush:
		return "flush prompt"
	case OperationRead:
		return "read line"
	case OperationDecode:
		return "decode line"
	default:
		return "perform unknown operation"
	}
}

// Error is the only error type returned by line reading operations. It wraps
// the underlying I/O or decoding error without any attempt at recovery.
type Error struct {
	// Operation is the operation that failed.
	Operation Operation
	// Err is the underlying error.
	Err error
}

// Error implements error.Error.
func (e *Error) Error() string {
	return fmt.Sprintf("unable to %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error. It allows errors.Cause from
// github.com/pkg/errors to see through this type.
func (e *Error) Cause() error {
	return e.Err
}
