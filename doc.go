// Package coingecko provides a Go client for the public CoinGecko
// cryptocurrency market-data API (v3).
//
// The client exposes one method per API endpoint, builds the request URL,
// retries transient server errors with exponential backoff, and returns the
// parsed JSON body as opaque structured data. Responses are not validated
// against a schema; maps, slices, and scalars come back exactly as the API
// sent them.
//
// Basic usage:
//
//	client, err := coingecko.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	price, err := client.GetPrice(ctx, []string{"bitcoin"}, []string{"usd"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(price)
package coingecko
