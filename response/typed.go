package response

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/logistics-platform/libs/go/measures/fault"
	"github.com/logistics-platform/libs/go/measures/functional"
)

// Of is the generic discriminated response carrying a typed payload in
// its success variant. The success variant always has a payload; the
// error variant never does.
type Of[T any] struct {
	statusCode int
	payload    functional.Option[T]
	message    functional.Option[string]
	success    bool
}

// SuccessOf creates a success response with a payload. A nil payload
// reference is rejected before the value exists.
func SuccessOf[T any](statusCode int, payload T) (Of[T], error) {
	if !validStatus(statusCode) {
		return Of[T]{}, fault.InvalidStatus(statusCode, "status code outside 100-599")
	}
	if !successStatus(statusCode) {
		return Of[T]{}, fault.InvalidStatus(statusCode, "success requires a 2xx status code")
	}
	if isNilReference(payload) {
		return Of[T]{}, fault.MissingArgument("payload")
	}
	return Of[T]{
		statusCode: statusCode,
		success:    true,
		payload:    functional.Some(payload),
		message:    functional.None[string](),
	}, nil
}

// OKOf creates a 200 success response with a payload.
func OKOf[T any](payload T) (Of[T], error) {
	return SuccessOf(http.StatusOK, payload)
}

// ErrorOf creates an error response of the payload-carrying family.
func ErrorOf[T any](statusCode int, message string) (Of[T], error) {
	if !validStatus(statusCode) {
		return Of[T]{}, fault.InvalidStatus(statusCode, "status code outside 100-599")
	}
	if successStatus(statusCode) {
		return Of[T]{}, fault.InvalidStatus(statusCode, "error requires a non-2xx status code")
	}
	msg := functional.None[string]()
	if message != "" {
		msg = functional.Some(message)
	}
	return Of[T]{statusCode: statusCode, message: msg}, nil
}

// StatusCode returns the HTTP status code.
func (r Of[T]) StatusCode() int {
	return r.statusCode
}

// IsSuccess returns true for the success variant.
func (r Of[T]) IsSuccess() bool {
	return r.success
}

// IsError returns true for the error variant.
func (r Of[T]) IsError() bool {
	return !r.success
}

// Payload returns the success payload, if any.
func (r Of[T]) Payload() functional.Option[T] {
	return r.payload
}

// ErrorMessage returns the error message, if any.
func (r Of[T]) ErrorMessage() functional.Option[string] {
	return r.message
}

// Match dispatches to exactly one handler. Both handlers must be
// present; a missing handler fails before any dispatch occurs.
func (r Of[T]) Match(onSuccess func(statusCode int, payload T), onError func(statusCode int, message string)) error {
	if onSuccess == nil {
		return fault.MissingArgument("onSuccess")
	}
	if onError == nil {
		return fault.MissingArgument("onError")
	}
	if r.success {
		onSuccess(r.statusCode, r.payload.Unwrap())
	} else {
		onError(r.statusCode, r.message.UnwrapOr(""))
	}
	return nil
}

// MapPayload transforms the success payload through fn, preserving the
// status code. An error response passes through untouched and fn is
// never invoked for it.
func MapPayload[T, U any](r Of[T], fn func(T) U) (Of[U], error) {
	if fn == nil {
		return Of[U]{}, fault.MissingArgument("fn")
	}
	if !r.success {
		return Of[U]{statusCode: r.statusCode, message: r.message}, nil
	}
	return Of[U]{
		statusCode: r.statusCode,
		success:    true,
		payload:    functional.Some(fn(r.payload.Unwrap())),
		message:    functional.None[string](),
	}, nil
}

// MarshalJSON implements json.Marshaler. Payload and errorMessage are
// mutually exclusive on the wire.
func (r Of[T]) MarshalJSON() ([]byte, error) {
	aux := struct {
		StatusCode   int     `json:"statusCode"`
		Payload      *T      `json:"payload,omitempty"`
		ErrorMessage *string `json:"errorMessage,omitempty"`
	}{
		StatusCode:   r.statusCode,
		Payload:      r.payload.Pointer(),
		ErrorMessage: r.message.Pointer(),
	}
	return json.Marshal(aux)
}

// UnmarshalJSON implements json.Unmarshaler. A success-range status
// without a payload is a structural violation, as is a payload on an
// error-range status.
func (r *Of[T]) UnmarshalJSON(data []byte) error {
	aux := struct {
		StatusCode   *int            `json:"statusCode"`
		Payload      json.RawMessage `json:"payload"`
		ErrorMessage *string         `json:"errorMessage"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fault.MalformedPayload("invalid response object").WithCause(err)
	}
	if aux.StatusCode == nil {
		return fault.MalformedPayload("missing required property statusCode")
	}
	code := *aux.StatusCode

	if successStatus(code) {
		if aux.ErrorMessage != nil {
			return fault.MalformedPayload("errorMessage not allowed on a success response")
		}
		if len(aux.Payload) == 0 || string(aux.Payload) == "null" {
			return fault.MalformedPayload("missing payload on a success response")
		}
		var payload T
		if err := json.Unmarshal(aux.Payload, &payload); err != nil {
			return fault.MalformedPayload("invalid payload").WithCause(err)
		}
		decoded, err := SuccessOf(code, payload)
		if err != nil {
			return err
		}
		*r = decoded
		return nil
	}

	if len(aux.Payload) != 0 && string(aux.Payload) != "null" {
		return fault.MalformedPayload("payload not allowed on an error response")
	}
	decoded, err := ErrorOf[T](code, derefOrEmpty(aux.ErrorMessage))
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

// isNilReference reports whether the payload is a nil interface or a
// typed nil hidden behind the type parameter.
func isNilReference(payload any) bool {
	if payload == nil {
		return true
	}
	rv := reflect.ValueOf(payload)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
