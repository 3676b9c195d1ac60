// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for circbuf library.

package api

import "fmt"

// Common errors used across the library.
//
// Full/empty conditions on the FIFO buffer are deliberately NOT errors:
// they are steady-state results reported as plain booleans so callers can
// poll them in a loop without diagnostic noise. Everything below signals
// caller misuse or resource exhaustion.
var (
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrNotInitialized    = fmt.Errorf("buffer not initialized")
	ErrAllocationFailure = fmt.Errorf("storage allocation failed")
	ErrOutOfRange        = fmt.Errorf("position out of range")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeNotInitialized
	ErrCodeAllocationFailure
	ErrCodeOutOfRange
	ErrCodeInternal
)

// sentinel maps a code back to the sentinel it refines, so errors.Is keeps
// working on structured errors.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeNotInitialized:
		return ErrNotInitialized
	case ErrCodeAllocationFailure:
		return ErrAllocationFailure
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	default:
		return nil
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel matching the error code.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
