package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// GetIndexes lists all market indexes.
func (c *Client) GetIndexes(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "indexes", extra)
}

// GetIndexesByID returns a market index by id.
func (c *Client) GetIndexesByID(ctx context.Context, id string, extra ...Param) (interface{}, error) {
	path := fmt.Sprintf("indexes/%s", url.PathEscape(id))
	return c.get(ctx, path, extra)
}

// GetIndexesList lists market indexes id and name.
func (c *Client) GetIndexesList(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "indexes/list", extra)
}
