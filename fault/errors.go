// Package fault provides the typed error taxonomy shared by the
// measures library. Every failure is synchronous and immediate: a
// value either fully constructs or does not exist, and there is no
// recovered or degraded mode.
package fault

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode identifies an error category.
type ErrorCode string

// Error codes for all library error categories.
const (
	// ErrCodeInvalidUnit signals an unrecognized unit string or an
	// out-of-range unit enumerator.
	ErrCodeInvalidUnit ErrorCode = "INVALID_UNIT"

	// ErrCodeInvalidStatus signals an HTTP status code outside 100-599,
	// or outside the range required by the factory called.
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS_CODE"

	// ErrCodeMissingArgument signals a required reference (payload,
	// handler, converter function) that is absent.
	ErrCodeMissingArgument ErrorCode = "MISSING_ARGUMENT"

	// ErrCodeMalformedPayload signals a structural JSON violation:
	// wrong starting token, unknown property, missing required
	// property, or premature end of input.
	ErrCodeMalformedPayload ErrorCode = "MALFORMED_PAYLOAD"

	// ErrCodeFormat signals a format string that failed unit-string
	// validation.
	ErrCodeFormat ErrorCode = "FORMAT_ERROR"
)

// Error is the standard library error type.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Error implements the error interface.
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

// WithCause sets the underlying cause.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Is checks if the error matches a target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	type alias Error
	aux := &struct {
		*alias
		Cause string `json:"cause,omitempty"`
	}{alias: (*alias)(e)}
	if e.cause != nil {
		aux.Cause = e.cause.Error()
	}
	return json.Marshal(aux)
}

// IsCode reports whether err is a *Error carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code == code
	}
	return false
}

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// InvalidUnit creates an invalid-unit error for an unrecognized string.
func InvalidUnit(text string) *Error {
	return New(ErrCodeInvalidUnit, "unrecognized unit").WithDetail("unit", text)
}

// InvalidUnitValue creates an invalid-unit error for an out-of-range
// enumerator. This indicates a caller bug, not bad input data.
func InvalidUnitValue(kind string, value int) *Error {
	return New(ErrCodeInvalidUnit, "out-of-range "+kind+" unit").WithDetail("value", value)
}

// InvalidStatus creates an invalid-status-code error.
func InvalidStatus(code int, reason string) *Error {
	return New(ErrCodeInvalidStatus, reason).WithDetail("statusCode", code)
}

// MissingArgument creates a missing-argument error.
func MissingArgument(name string) *Error {
	return New(ErrCodeMissingArgument, "required argument is absent").WithDetail("argument", name)
}

// MalformedPayload creates a malformed-payload error.
func MalformedPayload(reason string) *Error {
	return New(ErrCodeMalformedPayload, reason)
}

// Format creates a format error for an invalid format string.
func Format(format string) *Error {
	return New(ErrCodeFormat, "format string failed unit validation").WithDetail("format", format)
}
