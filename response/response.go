// Package response provides the Success/Error discriminated API
// response value. A response is exactly one of the two variants, is
// immutable once constructed, and can only be built through the
// Success and Error factories so that the status-code invariants hold
// for every instance that exists.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/logistics-platform/libs/go/measures/fault"
	"github.com/logistics-platform/libs/go/measures/functional"
)

// validStatus reports whether code is inside the valid HTTP range.
func validStatus(code int) bool {
	return code >= 100 && code <= 599
}

// successStatus reports whether code is in the 2xx range.
func successStatus(code int) bool {
	return code >= 200 && code <= 299
}

// Response is the payload-free discriminated response.
type Response struct {
	statusCode int
	message    functional.Option[string]
	success    bool
}

// Success creates a success response. The status code must be inside
// 100-599 and in the 2xx range, checked in that order.
func Success(statusCode int) (Response, error) {
	if !validStatus(statusCode) {
		return Response{}, fault.InvalidStatus(statusCode, "status code outside 100-599")
	}
	if !successStatus(statusCode) {
		return Response{}, fault.InvalidStatus(statusCode, "success requires a 2xx status code")
	}
	return Response{statusCode: statusCode, success: true, message: functional.None[string]()}, nil
}

// OK creates a 200 success response.
func OK() Response {
	r, _ := Success(http.StatusOK)
	return r
}

// Error creates an error response. The status code must be inside
// 100-599 and outside the 2xx range; an empty message means no message.
func Error(statusCode int, message string) (Response, error) {
	if !validStatus(statusCode) {
		return Response{}, fault.InvalidStatus(statusCode, "status code outside 100-599")
	}
	if successStatus(statusCode) {
		return Response{}, fault.InvalidStatus(statusCode, "error requires a non-2xx status code")
	}
	msg := functional.None[string]()
	if message != "" {
		msg = functional.Some(message)
	}
	return Response{statusCode: statusCode, message: msg}, nil
}

// StatusCode returns the HTTP status code.
func (r Response) StatusCode() int {
	return r.statusCode
}

// IsSuccess returns true for the success variant.
func (r Response) IsSuccess() bool {
	return r.success
}

// IsError returns true for the error variant.
func (r Response) IsError() bool {
	return !r.success
}

// ErrorMessage returns the error message, if any.
func (r Response) ErrorMessage() functional.Option[string] {
	return r.message
}

// Match dispatches to exactly one handler. Both handlers must be
// present; a missing handler fails before any dispatch occurs.
func (r Response) Match(onSuccess func(statusCode int), onError func(statusCode int, message string)) error {
	if onSuccess == nil {
		return fault.MissingArgument("onSuccess")
	}
	if onError == nil {
		return fault.MissingArgument("onError")
	}
	if r.success {
		onSuccess(r.statusCode)
	} else {
		onError(r.statusCode, r.message.UnwrapOr(""))
	}
	return nil
}

// responseJSON is the wire shape. A success response never carries an
// errorMessage property.
type responseJSON struct {
	StatusCode   int     `json:"statusCode"`
	ErrorMessage *string `json:"errorMessage,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(responseJSON{
		StatusCode:   r.statusCode,
		ErrorMessage: r.message.Pointer(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. The variant is inferred
// from the status code; an errorMessage on a success-range status is a
// structural violation.
func (r *Response) UnmarshalJSON(data []byte) error {
	aux := struct {
		StatusCode   *int    `json:"statusCode"`
		ErrorMessage *string `json:"errorMessage"`
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
		decoded, err := Success(code)
		if err != nil {
			return err
		}
		*r = decoded
		return nil
	}
	decoded, err := Error(code, derefOrEmpty(aux.ErrorMessage))
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
