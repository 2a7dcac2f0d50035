package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// GetDerivatives lists all derivative tickers.
func (c *Client) GetDerivatives(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "derivatives", extra)
}

// GetDerivativesExchanges lists all derivative exchanges.
func (c *Client) GetDerivativesExchanges(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "derivatives/exchanges", extra)
}

// GetDerivativesExchangesByID returns a derivative exchange by id.
func (c *Client) GetDerivativesExchangesByID(ctx context.Context, id string, extra ...Param) (interface{}, error) {
	path := fmt.Sprintf("derivatives/exchanges/%s", url.PathEscape(id))
	return c.get(ctx, path, extra)
}

// GetDerivativesExchangesList lists all derivative exchanges id and name.
func (c *Client) GetDerivativesExchangesList(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "derivatives/exchanges/list", extra)
}
