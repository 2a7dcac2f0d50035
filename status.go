package coingecko

import "context"

// GetStatusUpdates lists all status updates with data (description,
// category, created_at, user, user_title and pin).
func (c *Client) GetStatusUpdates(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "status_updates", extra)
}
