package coingecko

import "context"

// Ping checks API server status.
func (c *Client) Ping(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "ping", nil)
}
