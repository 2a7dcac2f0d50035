package coingecko

import "context"

// GetExchangeRates returns BTC-to-currency exchange rates.
func (c *Client) GetExchangeRates(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "exchange_rates", extra)
}
