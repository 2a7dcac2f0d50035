package coingecko

import (
	"errors"
	"fmt"
	"time"

	"github.com/coingecko-community/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")
)

// Error is implemented by all client errors.
type Error interface {
	error
	CoinGeckoError() // marker method
}

// APIError represents an HTTP failure for which the response body parsed
// successfully as JSON. Payload carries the API's own error structure and
// takes precedence over the generic transport failure whenever a parseable
// body exists.
type APIError struct {
	StatusCode int
	Payload    interface{}
}

func (e *APIError) Error() string {
	if e.Payload != nil {
		return fmt.Sprintf("API error %d: %v", e.StatusCode, e.Payload)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// CoinGeckoError implements the Error interface.
func (e *APIError) CoinGeckoError() {}

// TransportError represents a connection failure or a non-retryable HTTP
// status with no parseable JSON error body. StatusCode is zero when the
// request never produced a response.
type TransportError struct {
	URL        string
	StatusCode int
	Attempts   int
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

// CoinGeckoError implements the Error interface.
func (e *TransportError) CoinGeckoError() {}

// DecodeError represents a response body that could not be decoded under
// the configured encoding and error policy, or that was not valid JSON on
// a successful response.
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

// CoinGeckoError implements the Error interface.
func (e *DecodeError) CoinGeckoError() {}

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

// CoinGeckoError implements the Error interface.
func (e *TimeoutError) CoinGeckoError() {}

// wrapError converts internal API errors to public errors so that callers
// can branch on the public types with errors.As.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Payload:    apiErr.Payload,
		}
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return &TransportError{
			URL:        transportErr.URL,
			StatusCode: transportErr.StatusCode,
			Attempts:   transportErr.Attempts,
			Err:        transportErr.Err,
		}
	}

	var decodeErr *api.DecodeError
	if errors.As(err, &decodeErr) {
		return &DecodeError{
			Encoding: decodeErr.Encoding,
			Err:      decodeErr.Err,
		}
	}

	var timeoutErr *api.TimeoutError
	if errors.As(err, &timeoutErr) {
		return &TimeoutError{
			URL:     timeoutErr.URL,
			Timeout: timeoutErr.Timeout,
			Err:     timeoutErr.Err,
		}
	}

	return err
}
