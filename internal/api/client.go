package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
)

// DefaultTimeout bounds a whole request, retries included.
const DefaultTimeout = 120 * time.Second

// Recorder receives request lifecycle events for metrics collection.
// Implementations must be safe for concurrent use.
type Recorder interface {
	RecordRequest(endpoint string, statusCode int, duration time.Duration)
	RecordRetry(endpoint string, attempt int)
	RecordError(kind, endpoint string)
}

// Config configures the API client.
type Config struct {
	// HTTPClient is the underlying HTTP client. Defaults to a plain client;
	// the overall timeout is enforced via context, not http.Client.Timeout.
	HTTPClient *http.Client
	// Timeout bounds each call end to end, retries and backoff included.
	Timeout time.Duration
	// Retry configures the retry policy. Defaults to DefaultRetryConfig.
	Retry *RetryConfig
	// Logger receives debug-level request logging. Zero value is fine.
	Logger zerolog.Logger
	// Metrics receives request lifecycle events. May be nil.
	Metrics Recorder
	// Encoding is the response body character encoding. Nil selects UTF-8.
	Encoding encoding.Encoding
	// Policy is the decoding error policy. Defaults to strict.
	Policy ErrorPolicy
}

// Client executes HTTP GET requests against fully-formed URLs, retrying
// transient server failures and discriminating API-level error payloads
// from transport failures. It is stateless between calls and safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	retry      *RetryConfig
	logger     zerolog.Logger
	metrics    Recorder
	encoding   encoding.Encoding
	policy     ErrorPolicy
}

// NewClient creates an API client from the given configuration.
func NewClient(cfg Config) *Client {
	c := &Client{
		httpClient: cfg.HTTPClient,
		timeout:    cfg.Timeout,
		retry:      cfg.Retry,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		encoding:   cfg.Encoding,
		policy:     cfg.Policy,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.retry == nil {
		c.retry = DefaultRetryConfig()
	}
	return c
}

// HTTPClient exposes the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Get executes one GET against rawURL and returns the parsed JSON body.
//
// Retryable statuses are retried with backoff up to the configured attempt
// bound. Network-level failures propagate immediately. On an HTTP failure
// the already-buffered body is parsed a second time: a valid JSON document
// surfaces as an *APIError carrying the parsed payload, anything else
// re-surfaces the original failure as a *TransportError.
func (c *Client) Get(ctx context.Context, rawURL string) (interface{}, error) {
	endpoint := endpointLabel(rawURL)
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug().Str("url", rawURL).Msg("GET")

	resp, attempts, err := c.doWithRetry(ctx, rawURL, endpoint)
	if err != nil {
		c.recordError(err, endpoint)
		return nil, err
	}
	defer resp.Body.Close()

	c.recordRequest(endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		body, err := c.readBody(rawURL, attempts, resp.Body)
		if err != nil {
			c.recordError(err, endpoint)
			return nil, err
		}
		var payload interface{}
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			derr := &DecodeError{Encoding: encodingName(c.encoding), Err: fmt.Errorf("parse JSON: %w", err)}
			c.recordError(derr, endpoint)
			return nil, derr
		}
		return payload, nil
	}

	// HTTP failure. Attempt to surface the API's own error structure; the
	// body is buffered exactly once and parsed from the buffer.
	httpErr := &TransportError{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Attempts:   attempts,
		Err:        fmt.Errorf("unexpected status: %s", resp.Status),
	}

	body, err := c.readBody(rawURL, attempts, resp.Body)
	if err != nil {
		// Body unreadable; the original HTTP failure wins.
		c.recordError(httpErr, endpoint)
		return nil, httpErr
	}
	var payload interface{}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		// Not a JSON error document; the original HTTP failure wins.
		httpErr.Body = body
		c.recordError(httpErr, endpoint)
		return nil, httpErr
	}
	apiErr := &APIError{StatusCode: resp.StatusCode, Payload: payload, URL: rawURL}
	c.recordError(apiErr, endpoint)
	return nil, apiErr
}

// doWithRetry runs the attempt loop. It returns the final response and the
// number of attempts made. Bodies of abandoned attempts are drained and
// closed so connections are reused.
func (c *Client) doWithRetry(ctx context.Context, rawURL, endpoint string) (*http.Response, int, error) {
	attempt := 0
	for {
		attempt++

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, attempt, &TransportError{URL: rawURL, Attempts: attempt, Err: err}
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, attempt, c.wrapNetworkError(rawURL, attempt, err)
		}

		if !c.retry.ShouldRetry(attempt, resp.StatusCode) {
			return resp, attempt, nil
		}

		c.logger.Debug().
			Str("url", rawURL).
			Int("status", resp.StatusCode).
			Int("attempt", attempt).
			Msg("retrying")
		if c.metrics != nil {
			c.metrics.RecordRetry(endpoint, attempt)
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if err := c.retry.Wait(ctx, attempt-1); err != nil {
			return nil, attempt, c.wrapNetworkError(rawURL, attempt, err)
		}
	}
}

// readBody drains the response body through the decoding reader.
func (c *Client) readBody(rawURL string, attempts int, body io.Reader) (string, error) {
	text, err := NewDecodingReader(body, c.encoding, c.policy).ReadAll()
	if err != nil {
		var derr *DecodeError
		if errors.As(err, &derr) {
			return "", derr
		}
		return "", c.wrapNetworkError(rawURL, attempts, err)
	}
	return text, nil
}

// wrapNetworkError classifies a request-level failure as a timeout or a
// transport error.
func (c *Client) wrapNetworkError(rawURL string, attempt int, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
		return &TimeoutError{URL: rawURL, Timeout: c.timeout, Err: err}
	}
	return &TransportError{URL: rawURL, Attempts: attempt, Err: err}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Client) recordRequest(endpoint string, statusCode int, duration time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordRequest(endpoint, statusCode, duration)
	}
}

func (c *Client) recordError(err error, endpoint string) {
	c.logger.Debug().Err(err).Str("endpoint", endpoint).Msg("request failed")
	if c.metrics != nil {
		c.metrics.RecordError(errKind(err), endpoint)
	}
}

// errKind maps an error to a stable metrics label.
func errKind(err error) string {
	var (
		apiErr     *APIError
		decodeErr  *DecodeError
		timeoutErr *TimeoutError
	)
	switch {
	case errors.As(err, &apiErr):
		return "api"
	case errors.As(err, &decodeErr):
		return "decode"
	case errors.As(err, &timeoutErr):
		return "timeout"
	default:
		return "transport"
	}
}

// endpointLabel reduces a URL to its path for log and metrics labels.
func endpointLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return rawURL
	}
	return u.Path
}
