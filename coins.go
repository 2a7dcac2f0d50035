package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// GetCoins lists all coins with data (name, price, market, developer,
// community, etc).
func (c *Client) GetCoins(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "coins", extra)
}

// GetCoinsList lists all supported coins id, name and symbol.
func (c *Client) GetCoinsList(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "coins/list", extra)
}

// GetCoinsMarkets lists all supported coins price, market cap, volume, and
// market related data.
func (c *Client) GetCoinsMarkets(ctx context.Context, vsCurrency string, extra ...Param) (interface{}, error) {
	params := Params{P("vs_currency", vsCurrency)}
	return c.get(ctx, "coins/markets", append(params, extra...))
}

// GetCoinByID returns current data (name, price, market, including exchange
// tickers) for a coin.
func (c *Client) GetCoinByID(ctx context.Context, id string, extra ...Param) (interface{}, error) {
	path := fmt.Sprintf("coins/%s", url.PathEscape(id))
	return c.get(ctx, path, extra)
}

// GetCoinTickerByID returns coin tickers, paginated to 100 items.
func (c *Client) GetCoinTickerByID(ctx context.Context, id string, extra ...Param) (interface{}, error) {
	path := fmt.Sprintf("coins/%s/tickers", url.PathEscape(id))
	return c.get(ctx, path, extra)
}

// GetCoinHistoryByID returns historical data (name, price, market, stats)
// for a coin at a given date (dd-mm-yyyy).
func (c *Client) GetCoinHistoryByID(ctx context.Context, id, date string, extra ...Param) (interface{}, error) {
	params := Params{P("date", date)}
	path := fmt.Sprintf("coins/%s/history", url.PathEscape(id))
	return c.get(ctx, path, append(params, extra...))
}

// GetCoinMarketChartByID returns historical market data including price,
// market cap, and 24h volume (granularity auto).
func (c *Client) GetCoinMarketChartByID(ctx context.Context, id, vsCurrency, days string, extra ...Param) (interface{}, error) {
	params := Params{
		P("vs_currency", vsCurrency),
		P("days", days),
	}
	path := fmt.Sprintf("coins/%s/market_chart", url.PathEscape(id))
	return c.get(ctx, path, append(params, extra...))
}

// GetCoinMarketChartRangeByID returns historical market data including
// price, market cap, and 24h volume within a range of unix timestamps
// (granularity auto).
func (c *Client) GetCoinMarketChartRangeByID(ctx context.Context, id, vsCurrency string, from, to int64, extra ...Param) (interface{}, error) {
	params := Params{
		P("vs_currency", vsCurrency),
		P("from", from),
		P("to", to),
	}
	path := fmt.Sprintf("coins/%s/market_chart/range", url.PathEscape(id))
	return c.get(ctx, path, append(params, extra...))
}

// GetCoinStatusUpdatesByID returns status updates for a given coin.
func (c *Client) GetCoinStatusUpdatesByID(ctx context.Context, id string, extra ...Param) (interface{}, error) {
	path := fmt.Sprintf("coins/%s/status_updates", url.PathEscape(id))
	return c.get(ctx, path, extra)
}

// GetCoinOHLCByID returns a coin's OHLC candles.
func (c *Client) GetCoinOHLCByID(ctx context.Context, id, vsCurrency, days string, extra ...Param) (interface{}, error) {
	params := Params{
		P("vs_currency", vsCurrency),
		P("days", days),
	}
	path := fmt.Sprintf("coins/%s/ohlc", url.PathEscape(id))
	return c.get(ctx, path, append(params, extra...))
}
