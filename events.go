package coingecko

import "context"

// GetEvents returns events, paginated by 100.
func (c *Client) GetEvents(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "events", extra)
}

// GetEventsCountries returns the list of event countries.
func (c *Client) GetEventsCountries(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "events/countries", extra)
}

// GetEventsTypes returns the list of event types.
func (c *Client) GetEventsTypes(ctx context.Context, extra ...Param) (interface{}, error) {
	return c.get(ctx, "events/types", extra)
}
