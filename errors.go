package optics

import (
	"errors"
	"fmt"
)

// Code classifies optics failures. All failures happen at application
// time against a concrete state; composition never fails.
type Code string

// Codes for every failure the library can produce.
const (
	// CodeEmptyFocus: an operation expected at least one focus and
	// found none (e.g. Get through an out-of-range index).
	CodeEmptyFocus Code = "EMPTY_FOCUS"
	// CodeHookMissing: a multi-focus optic was applied to a value
	// whose type has no registered or built-in decomposition.
	CodeHookMissing Code = "HOOK_MISSING"
	// CodeUnsupported: the requested operation exceeds the optic's
	// capability (e.g. Set through a Fold).
	CodeUnsupported Code = "UNSUPPORTED_OPERATION"
	// CodeFocus: a structural assumption was violated (e.g. Both on a
	// one-element sequence, or a replacement of the wrong type).
	CodeFocus Code = "FOCUS_ERROR"
)

// Error is the failure type for every optics operation.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error carrying the same code, so callers can test
// against the sentinel values below with errors.Is.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrEmptyFocus  = &Error{Code: CodeEmptyFocus, Message: "no focus"}
	ErrHookMissing = &Error{Code: CodeHookMissing, Message: "no hook registered"}
	ErrUnsupported = &Error{Code: CodeUnsupported, Message: "operation not supported"}
	ErrFocus       = &Error{Code: CodeFocus, Message: "focus violation"}
)

func emptyFocusf(format string, args ...any) *Error {
	return &Error{Code: CodeEmptyFocus, Message: fmt.Sprintf(format, args...)}
}

func hookMissingf(format string, args ...any) *Error {
	return &Error{Code: CodeHookMissing, Message: fmt.Sprintf(format, args...)}
}

func unsupportedf(op string, k Kind) *Error {
	return &Error{
		Code:    CodeUnsupported,
		Message: fmt.Sprintf("%s is not supported by a %v optic", op, k),
	}
}

func focusErrorf(format string, args ...any) *Error {
	return &Error{Code: CodeFocus, Message: fmt.Sprintf(format, args...)}
}

// wrapFocus passes optics errors through untouched and wraps anything
// else (hook implementation failures) as a focus error.
func wrapFocus(err error) error {
	var oe *Error
	if errors.As(err, &oe) {
		return err
	}
	return &Error{Code: CodeFocus, Message: "hook failure", cause: err}
}
