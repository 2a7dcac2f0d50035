package coingecko

import "context"

// GetGlobal returns cryptocurrency global data. The top-level "data"
// envelope is unwrapped before returning.
func (c *Client) GetGlobal(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.getData(ctx, "global", extra)
}

// GetGlobalDecentralizedFinanceDefi returns cryptocurrency global
// decentralized finance (defi) data. The top-level "data" envelope is
// unwrapped before returning.
func (c *Client) GetGlobalDecentralizedFinanceDefi(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.getData(ctx, "global/decentralized_finance_defi", extra)
}
