package coingecko

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"github.com/coingecko-community/client-go/internal/api"
)

// DefaultBaseURL is the public CoinGecko API v3 base URL.
const DefaultBaseURL = "https://api.coingecko.com/api/v3/"

const (
	defaultTimeout       = api.DefaultTimeout
	defaultRetryAttempts = 5
)

// defaultRetryableStatuses is the "service temporarily unavailable" class.
var defaultRetryableStatuses = []int{502, 503, 504}

// ErrorPolicy controls how malformed response bytes are handled.
type ErrorPolicy = api.ErrorPolicy

// Decoding error policies.
const (
	// ErrorPolicyStrict fails decoding on the first malformed byte sequence.
	ErrorPolicyStrict = api.ErrorPolicyStrict
	// ErrorPolicyReplace substitutes U+FFFD for malformed byte sequences.
	ErrorPolicyReplace = api.ErrorPolicyReplace
)

// clientConfig holds configuration for the client. It is immutable once the
// client has been constructed.
type clientConfig struct {
	baseURL           string
	httpClient        *http.Client
	timeout           time.Duration
	retryAttempts     int
	retryableStatuses []int
	backoffBase       time.Duration
	backoffMax        time.Duration
	logger            zerolog.Logger
	metrics           *MetricsCollector
	encoding          encoding.Encoding
	errorPolicy       ErrorPolicy
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout bounds each call end to end, retries and backoff included.
// Default: 120 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetryAttempts sets the total number of attempts per call, including
// the first. Default: 5.
func WithRetryAttempts(attempts int) Option {
	return func(c *clientConfig) {
		c.retryAttempts = attempts
	}
}

// WithRetryableStatuses sets the HTTP status codes that trigger a retry.
// Default: 502, 503, 504.
func WithRetryableStatuses(statusCodes ...int) Option {
	return func(c *clientConfig) {
		c.retryableStatuses = statusCodes
	}
}

// WithBackoff sets the initial and maximum delay of the exponential backoff
// between retry attempts.
func WithBackoff(base, max time.Duration) Option {
	return func(c *clientConfig) {
		c.backoffBase = base
		c.backoffMax = max
	}
}

// WithLogger sets the logger for debug-level request logging.
// Default: a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithMetrics attaches a Prometheus metrics collector to the client.
func WithMetrics(metrics *MetricsCollector) Option {
	return func(c *clientConfig) {
		c.metrics = metrics
	}
}

// WithEncoding sets the character encoding used to decode response bodies.
// Default: UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *clientConfig) {
		c.encoding = enc
	}
}

// WithErrorPolicy sets the decoding error policy. Default: strict.
func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(c *clientConfig) {
		c.errorPolicy = policy
	}
}
