package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// GetCoinInfoFromContractAddressByID returns coin info from a contract
// address.
func (c *Client) GetCoinInfoFromContractAddressByID(ctx context.Context, id, contractAddress string, extra ...Param) (interface{}, error) {
	path := fmt.Sprintf("coins/%s/contract/%s", url.PathEscape(id), url.PathEscape(contractAddress))
	return c.get(ctx, path, extra)
}

// GetCoinMarketChartFromContractAddressByID returns historical market data
// including price, market cap, and 24h volume (granularity auto) for a
// contract address.
func (c *Client) GetCoinMarketChartFromContractAddressByID(ctx context.Context, id, contractAddress, vsCurrency, days string, extra ...Param) (interface{}, error) {
	params := Params{
		P("vs_currency", vsCurrency),
		P("days", days),
	}
	path := fmt.Sprintf("coins/%s/contract/%s/market_chart", url.PathEscape(id), url.PathEscape(contractAddress))
	return c.get(ctx, path, append(params, extra...))
}

// GetCoinMarketChartRangeFromContractAddressByID returns historical market
// data including price, market cap, and 24h volume within a range of unix
// timestamps (granularity auto) for a contract address.
func (c *Client) GetCoinMarketChartRangeFromContractAddressByID(ctx context.Context, id, contractAddress, vsCurrency string, from, to int64, extra ...Param) (interface{}, error) {
	params := Params{
		P("vs_currency", vsCurrency),
		P("from", from),
		P("to", to),
	}
	path := fmt.Sprintf("coins/%s/contract/%s/market_chart/range", url.PathEscape(id), url.PathEscape(contractAddress))
	return c.get(ctx, path, append(params, extra...))
}
