// Package errors provides the reference host's error types.
// All error types support error unwrapping via errors.As() and errors.Is().
//
// The guest side of the SDK has no error taxonomy: a failed host call is a trap
// raised by the host. These types are what the reference host traps with.
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/reglet-dev/turing-sdk/domain/entities"
)

// Sentinel causes wrapped by the typed errors below.
var (
	ErrNullHandle    = stdErrors.New("null handle")
	ErrStaleHandle   = stdErrors.New("stale handle")
	ErrUnknownHandle = stdErrors.New("unknown handle")
	ErrKindMismatch  = stdErrors.New("kind mismatch")
	ErrArenaFull     = stdErrors.New("object arena full")
	ErrNotDeclared   = stdErrors.New("operation not declared for kind")
	ErrMissingKey    = stdErrors.New("key not present")
	ErrOutOfBounds   = stdErrors.New("guest memory access out of bounds")
)

// CodedError is implemented by errors that carry a machine-readable code.
type CodedError interface {
	error
	Code() string
}

// CodeOf returns the code of the first CodedError in err's chain, or "internal".
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var ce CodedError
	if stdErrors.As(err, &ce) {
		return ce.Code()
	}
	return "internal"
}

// HandleError reports a handle the host cannot resolve.
// Err is one of ErrNullHandle, ErrStaleHandle, ErrUnknownHandle.
type HandleError struct {
	Err    error
	Op     string
	Handle entities.Handle
}

func (e *HandleError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v %s", e.Op, e.Err, e.Handle)
	}
	return fmt.Sprintf("%v %s", e.Err, e.Handle)
}

func (e *HandleError) Unwrap() error {
	return e.Err
}

// Code implements CodedError.
func (e *HandleError) Code() string {
	return "handle"
}

// KindError reports a handle used as the wrong kind of object.
type KindError struct {
	Op     string
	Handle entities.Handle
	Want   entities.Kind
	Got    entities.Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: %s is a %s, want %s", e.Op, e.Handle, e.Got, e.Want)
}

func (e *KindError) Unwrap() error {
	return ErrKindMismatch
}

// Code implements CodedError.
func (e *KindError) Code() string {
	return "kind"
}

// DeclarationError reports an operation the catalogue does not declare for a kind.
type DeclarationError struct {
	Op   string
	Kind entities.Kind
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("%s is not declared for %s", e.Op, e.Kind)
}

func (e *DeclarationError) Unwrap() error {
	return ErrNotDeclared
}

// Code implements CodedError.
func (e *DeclarationError) Code() string {
	return "declaration"
}

// StoreError represents a persistent store failure.
type StoreError struct {
	Err  error
	Op   string
	Key  string
	Kind entities.StoreKind
}

func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("persistent %s %s %q failed: %v", e.Kind, e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("persistent store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Code implements CodedError.
func (e *StoreError) Code() string {
	return "store"
}

// MemoryError represents an invalid guest memory access.
type MemoryError struct {
	Err    error
	Op     string
	Ptr    uint32
	Length uint32
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("%s at %#x (len %d): %v", e.Op, e.Ptr, e.Length, e.Err)
}

func (e *MemoryError) Unwrap() error {
	return e.Err
}

// Code implements CodedError.
func (e *MemoryError) Code() string {
	return "memory"
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Code implements CodedError.
func (e *ConfigError) Code() string {
	return "config"
}
