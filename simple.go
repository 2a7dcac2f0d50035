package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// GetPrice returns the current price of any cryptocurrencies in any other
// supported currencies.
func (c *Client) GetPrice(ctx context.Context, ids, vsCurrencies []string, extra ...Param) (interface{}, error) {
	params := Params{
		P("ids", commaJoin(ids)),
		P("vs_currencies", commaJoin(vsCurrencies)),
	}
	return c.get(ctx, "simple/price", append(params, extra...))
}

// GetTokenPrice returns the current price of tokens on the given platform
// (by contract address) in any other supported currencies.
func (c *Client) GetTokenPrice(ctx context.Context, id string, contractAddresses, vsCurrencies []string, extra ...Param) (interface{}, error) {
	params := Params{
		P("contract_addresses", commaJoin(contractAddresses)),
		P("vs_currencies", commaJoin(vsCurrencies)),
	}
	path := fmt.Sprintf("simple/token_price/%s", url.PathEscape(id))
	return c.get(ctx, path, append(params, extra...))
}

// GetSupportedVsCurrencies returns the list of supported vs currencies.
func (c *Client) GetSupportedVsCurrencies(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "simple/supported_vs_currencies", extra)
}
