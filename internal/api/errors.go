package api

import (
	"fmt"
	"time"
)

// APIError represents an HTTP failure for which the response body parsed
// successfully as JSON. Payload carries the API's own error structure.
type APIError struct {
	StatusCode int
	Payload    interface{}
	URL        string
}

func (e *APIError) Error() string {
	if e.Payload != nil {
		return fmt.Sprintf("API error %d: %v", e.StatusCode, e.Payload)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// TransportError represents a connection failure or a non-retryable HTTP
// status with no parseable JSON error body. StatusCode is zero when the
// request never produced a response.
type TransportError struct {
	URL        string
	StatusCode int
	Attempts   int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed with status %d after %d attempt(s)", e.URL, e.StatusCode, e.Attempts)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError represents a response body that could not be decoded, either
// as text under the configured encoding and error policy, or as JSON on a
// successful response.
type DecodeError struct {
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (%s): %v", e.Encoding, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TimeoutError represents a request that exceeded the configured timeout,
// retries included.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %v", e.URL, e.Timeout)
}

// Unwrap returns the underlying error.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}
