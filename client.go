package coingecko

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/coingecko-community/client-go/internal/api"
)

// Client is a CoinGecko API client. All methods are safe for concurrent
// use; the only state shared between calls is the immutable configuration.
type Client struct {
	apiClient *api.Client
	baseURL   string

	mu     sync.RWMutex
	closed bool
}

// New creates a CoinGecko client. With no options it talks to the public
// API at DefaultBaseURL with a 120 second timeout and up to five attempts
// per call on 502, 503, and 504 responses.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:           DefaultBaseURL,
		timeout:           defaultTimeout,
		retryAttempts:     defaultRetryAttempts,
		retryableStatuses: defaultRetryableStatuses,
		logger:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.retryAttempts < 1 {
		return nil, fmt.Errorf("retry attempts must be at least 1, got %d", cfg.retryAttempts)
	}

	retry := api.DefaultRetryConfig()
	retry.MaxAttempts = cfg.retryAttempts
	retry.RetryableOn = api.RetryableStatuses(cfg.retryableStatuses...)
	if cfg.backoffBase > 0 {
		retry.BaseDelay = cfg.backoffBase
	}
	if cfg.backoffMax > 0 {
		retry.MaxDelay = cfg.backoffMax
	}

	var metrics api.Recorder
	if cfg.metrics != nil {
		metrics = cfg.metrics
	}

	apiClient := api.NewClient(api.Config{
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		Retry:      retry,
		Logger:     cfg.logger,
		Metrics:    metrics,
		Encoding:   cfg.encoding,
		Policy:     cfg.errorPolicy,
	})

	return &Client{
		apiClient: apiClient,
		baseURL:   strings.TrimRight(cfg.baseURL, "/") + "/",
	}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close closes the client and releases idle connections. Close is safe to
// call multiple times; operations on a closed client fail with
// ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.apiClient.HTTPClient().CloseIdleConnections()
	return nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// get executes a GET against path with the given query parameters and
// returns the parsed JSON body unchanged.
func (c *Client) get(ctx context.Context, path string, params Params) (interface{}, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	url := c.baseURL + path
	if qs := params.Encode(); qs != "" {
		url += "?" + qs
	}

	result, err := c.apiClient.Get(ctx, url)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// getData executes a GET and unwraps the top-level "data" envelope some
// endpoints use.
func (c *Client) getData(ctx context.Context, path string, params Params) (interface{}, error) {
	result, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	obj, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("response is %T, expected an object with a \"data\" key", result)
	}
	data, ok := obj["data"]
	if !ok {
		return nil, fmt.Errorf("response is missing the \"data\" key")
	}
	return data, nil
}
