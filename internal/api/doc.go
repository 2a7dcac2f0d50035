// Package api implements the HTTP request pipeline for the CoinGecko
// client: bounded retries on transient server errors, incremental response
// decoding, and discrimination of API-level error payloads from transport
// failures.
package api
