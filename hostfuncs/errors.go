package hostfuncs

import (
	"errors"
	"fmt"

	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
)

// ErrFunctionNotFound is returned by Invoke for an unregistered name.
var ErrFunctionNotFound = errors.New("host function not found")

// HostError is the trap value of a failed host call.
type HostError struct {
	Err      error
	Function string
	Plugin   string
}

func (e *HostError) Error() string {
	if e.Plugin != "" {
		return fmt.Sprintf("host function %s (plugin %s): %v", e.Function, e.Plugin, e.Err)
	}
	return fmt.Sprintf("host function %s: %v", e.Function, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// Code implements errors.CodedError using the cause's code.
func (e *HostError) Code() string {
	return hosterrors.CodeOf(e.Err)
}

// PanicError wraps a value recovered from a panicking handler.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Code implements errors.CodedError.
func (e *PanicError) Code() string {
	return "panic"
}
