// Package functional provides the Option and Result containers used
// across the measures library.
package functional

// Option represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{present: false}
}

// FromPointer creates an Option from a pointer, None when nil.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Unwrap returns the contained value or panics if empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("called Unwrap on None")
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Pointer returns a pointer to the contained value, or nil when empty.
func (o Option[T]) Pointer() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// Match executes one of two functions based on Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// MapOption applies a transformation function to Option.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}
