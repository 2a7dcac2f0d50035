// Command gecko is a small query tool for the CoinGecko API, mainly used
// for manual verification against the live service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	coingecko "github.com/coingecko-community/client-go"
)

// Config carries the process streams so run can be exercised in tests.
type Config struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: gecko <ping|price|coin|global|trending> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	opts := []coingecko.Option{}
	if u := os.Getenv("COINGECKO_URL"); u != "" {
		opts = append(opts, coingecko.WithBaseURL(u))
	}

	client, err := coingecko.New(opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer client.Close()

	var result interface{}

	switch args[1] {
	case "ping":
		result, err = client.Ping(ctx)
	case "price":
		if len(args) < 4 {
			return fmt.Errorf("usage: gecko price <ids> <vs_currencies>")
		}
		result, err = client.GetPrice(ctx, []string{args[2]}, []string{args[3]})
	case "coin":
		if len(args) < 3 {
			return fmt.Errorf("usage: gecko coin <id>")
		}
		result, err = client.GetCoinByID(ctx, args[2])
	case "global":
		result, err = client.GetGlobal(ctx)
	case "trending":
		result, err = client.GetSearchTrending(ctx)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cfg.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
