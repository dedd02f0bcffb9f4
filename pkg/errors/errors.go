// Package errors provides the unified error type and factory functions for
// fjcnorm. Every layer uses AppError as the single carrier for structured
// error information so that failures log consistently and remain
// errors.Is / errors.As transparent across the whole chain.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the structured error type used throughout fjcnorm. It satisfies
// the standard error interface and supports Go 1.13+ error wrapping.
//
// Usage:
//
//	return errors.New(errors.CodeInputMalformed, "input is missing required column \"Judge Name\"")
//	return errors.Wrap(err, errors.CodeOutputWrite, "flush output")
type AppError struct {
	// Code is the typed error code identifying the failure category.
	Code ErrorCode

	// Message is the human-readable description of the failure.
	Message string

	// Cause is the underlying error, if any, enabling errors.Is / errors.As
	// traversal of the full chain.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code>] <message>: <cause>"; the cause segment is omitted when nil.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is / errors.As traversal.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New constructs an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf constructs an AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message. Returns nil when err is nil so
// call sites can wrap unconditionally.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf annotates err with a code and a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// CodeOf returns the ErrorCode of the outermost AppError in err's chain, or
// CodeInternal when err carries no AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// Is, As, and Unwrap re-export the standard library helpers so that callers
// importing this package do not also need a renamed import of "errors".

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error { return errors.Unwrap(err) }
