package input

import (
	"errors"
	"io"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

// TestErrorUnwrapping tests that Error exposes its underlying error to both
// the standard errors package and github.com/pkg/errors.
func TestErrorUnwrapping(t *testing.T) {
	err := error(&Error{Operation: OperationRead, Err: io.ErrClosedPipe})
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Error("underlying error not visible to errors.Is")
	}
	if cause := pkgerrors.Cause(err); cause != io.ErrClosedPipe {
		t.Error("underlying error not visible to errors.Cause:", cause)
	}
	var target *Error
	if !errors.As(pkgerrors.Wrap(err, "unable to prompt"), &target) {
		t.Fatal("wrapped error not visible to errors.As")
	} else if target.Operation != OperationRead {
		t.Error("operation mismatch:", target.Operation, "!=", OperationRead)
	}
}

// TestErrorMessages tests error message formatting for each operation.
func TestErrorMessages(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		operation Operation
		expected  string
	}{
		{OperationWrite, "unable to write prompt: io: read/write on closed pipe"},
		{OperationFlush, "unable to flush prompt: io: read/write on closed pipe"},
		{OperationRead, "unable to read line: io: read/write on closed pipe"},
		{OperationDecode, "unable to decode line: io: read/write on closed pipe"},
		{Operation(42), "unable to perform unknown operation: io: read/write on closed pipe"},
	}

	// Process test cases.
	for _, testCase := range testCases {
		err := &Error{Operation: testCase.operation, Err: io.ErrClosedPipe}
		if message := err.Error(); message != testCase.expected {
			t.Errorf("error message mismatch: %q != %q", message, testCase.expected)
		}
	}
}
