package solver

import (
	"fmt"
	"net/http"
)

// ValidationError indicates the problem was rejected before any request
// was issued.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// HTTPError indicates the server answered with a non-success status.
// Detail holds the server-supplied "detail" string when one was present.
type HTTPError struct {
	Variant    Variant
	StatusCode int
	Status     string
	Detail     string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	status := http.StatusText(e.StatusCode)
	if status == "" {
		status = e.Status
	}
	return fmt.Sprintf("Error from %s model: %s", e.Variant, status)
}

// TransportError indicates the request could not complete at all
// (DNS, refused connection, platform timeout).
type TransportError struct {
	Variant Variant
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Could not reach %s model: %v", e.Variant, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError indicates a success status whose body was not a valid result.
type DecodeError struct {
	Variant Variant
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Invalid response from %s model: %v", e.Variant, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
