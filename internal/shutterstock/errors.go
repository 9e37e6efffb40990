package shutterstock

import (
	"errors"
	"fmt"
	"net/http"
)

const notFoundMessage = "not found"

// ErrNotFound matches any *APIError produced from a 404 response.
var ErrNotFound = errors.New(notFoundMessage)

// ErrEmptyID is returned by Get when called without an id.
var ErrEmptyID = errors.New("id must not be empty")

// ErrorDetail is one entry of the "errors" array the API attaches to failures.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
	Data    string `json:"data,omitempty"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	Message    string
	HTTPStatus int
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	if e.HTTPStatus == http.StatusNotFound {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.HTTPStatus)
}

// Is reports whether target is ErrNotFound and this error came from a 404.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.HTTPStatus == http.StatusNotFound
}

// DecodeError is returned when a 2xx body cannot be turned into the expected result.
type DecodeError struct {
	HTTPStatus int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (HTTP %d): %v", e.HTTPStatus, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError is returned when no HTTP response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
