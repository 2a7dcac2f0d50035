//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	coingecko "github.com/coingecko-community/client-go"
	"github.com/joho/godotenv"
)

var baseURL string

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	// COINGECKO_URL overrides the public API, e.g. to point at a proxy
	// or a pro-tier host.
	baseURL = os.Getenv("COINGECKO_URL")

	os.Stderr.WriteString("Running integration tests against the live API...\n")
	os.Exit(m.Run())
}

func newClient(t *testing.T) *coingecko.Client {
	t.Helper()

	opts := []coingecko.Option{
		coingecko.WithTimeout(30 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, coingecko.WithBaseURL(baseURL))
	}

	client, err := coingecko.New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestIntegration_Ping(t *testing.T) {
	client := newClient(t)

	result, err := client.Ping(context.Background())
	if err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	pong, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("Ping() = %T, want object", result)
	}
	if pong["gecko_says"] == nil {
		t.Error("Ping() response missing gecko_says")
	}
}

func TestIntegration_GetPrice(t *testing.T) {
	client := newClient(t)

	result, err := client.GetPrice(context.Background(),
		[]string{"bitcoin"}, []string{"usd"})
	if err != nil {
		t.Fatalf("GetPrice() error = %v", err)
	}

	prices, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("GetPrice() = %T, want object", result)
	}
	btc, ok := prices["bitcoin"].(map[string]interface{})
	if !ok {
		t.Fatal("GetPrice() response missing bitcoin")
	}
	if _, ok := btc["usd"].(float64); !ok {
		t.Error("GetPrice() response missing usd price")
	}
}

func TestIntegration_GetCoinsList(t *testing.T) {
	client := newClient(t)

	result, err := client.GetCoinsList(context.Background())
	if err != nil {
		t.Fatalf("GetCoinsList() error = %v", err)
	}

	coins, ok := result.([]interface{})
	if !ok {
		t.Fatalf("GetCoinsList() = %T, want array", result)
	}
	if len(coins) == 0 {
		t.Error("GetCoinsList() returned no coins")
	}
}

func TestIntegration_GetGlobal(t *testing.T) {
	client := newClient(t)

	result, err := client.GetGlobal(context.Background())
	if err != nil {
		t.Fatalf("GetGlobal() error = %v", err)
	}

	// The data envelope is unwrapped: fields appear at the top level.
	stats, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("GetGlobal() = %T, want object", result)
	}
	if stats["active_cryptocurrencies"] == nil {
		t.Error("GetGlobal() response missing active_cryptocurrencies")
	}
	if stats["data"] != nil {
		t.Error("GetGlobal() response still wrapped in data envelope")
	}
}

func TestIntegration_NotFound(t *testing.T) {
	client := newClient(t)

	_, err := client.GetCoinByID(context.Background(),
		"this-coin-definitely-does-not-exist-12345")
	if err == nil {
		t.Fatal("expected error for nonexistent coin")
	}

	var apiErr *coingecko.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *coingecko.APIError", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
}
