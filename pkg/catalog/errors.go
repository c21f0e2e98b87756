package catalog

import (
	"errors"
	"fmt"
)

// ErrMissingField marks a body that parsed but lacks a field the client relies on
var ErrMissingField = errors.New("missing expected field")

// NetworkError is returned when a request could not be sent or its response could not be read
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is returned when the catalog answers with a non success status
type HTTPStatusError struct {
	URL    string
	Status int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("request to %s returned status %d", e.URL, e.Status)
}

// DecodeError is returned when a body is not valid json or lacks expected fields
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
