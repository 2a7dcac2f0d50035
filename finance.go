package coingecko

import "context"

// GetFinancePlatforms returns cryptocurrency finance platforms data.
func (c *Client) GetFinancePlatforms(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "finance_platforms", extra)
}

// GetFinanceProducts returns cryptocurrency finance products data.
func (c *Client) GetFinanceProducts(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "finance_products", extra)
}
