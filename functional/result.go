package functional

import "errors"

// NewError creates a new error with the given message.
func NewError(msg string) error {
	return errors.New(msg)
}

// Result represents the outcome of an operation that may fail.
// It contains either a success value or an error.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err, ok: false}
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value or panics on error.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on Err: " + r.err.Error())
	}
	return r.value
}

// UnwrapErr returns the error or panics on success.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// Get returns the success value and error in the conventional Go shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Match executes one of two functions based on Result state.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// ToOption converts Result to Option, discarding the error.
func (r Result[T]) ToOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// MapResult applies a transformation function to Result.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// Try wraps a function call with error handling.
func Try[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}
