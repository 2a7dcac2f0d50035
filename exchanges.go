package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// GetExchangesList lists all exchanges.
func (c *Client) GetExchangesList(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "exchanges", extra)
}

// GetExchangesIDNameList lists all supported exchanges id and name.
func (c *Client) GetExchangesIDNameList(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "exchanges/list", extra)
}

// GetExchangesByID returns exchange volume in BTC and tickers.
func (c *Client) GetExchangesByID(ctx context.Context, id string, extra ...Param) (interface{}, error) {
	path := fmt.Sprintf("exchanges/%s", url.PathEscape(id))
	return c.get(ctx, path, extra)
}

// GetExchangesTickersByID returns exchange tickers, paginated to 100 items
// per page.
func (c *Client) GetExchangesTickersByID(ctx context.Context, id string, extra ...Param) (interface{}, error) {
	path := fmt.Sprintf("exchanges/%s/tickers", url.PathEscape(id))
	return c.get(ctx, path, extra)
}

// GetExchangesStatusUpdatesByID returns status updates for a given exchange.
func (c *Client) GetExchangesStatusUpdatesByID(ctx context.Context, id string, extra ...Param) (interface{}, error) {
	path := fmt.Sprintf("exchanges/%s/status_updates", url.PathEscape(id))
	return c.get(ctx, path, extra)
}

// GetExchangesVolumeChartByID returns volume chart data for a given
// exchange.
func (c *Client) GetExchangesVolumeChartByID(ctx context.Context, id, days string, extra ...Param) (interface{}, error) {
	params := Params{P("days", days)}
	path := fmt.Sprintf("exchanges/%s/volume_chart", url.PathEscape(id))
	return c.get(ctx, path, append(params, extra...))
}
