package coingecko

import "context"

// GetSearchTrending returns the top 7 trending coin searches.
func (c *Client) GetSearchTrending(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "search/trending", extra)
}
