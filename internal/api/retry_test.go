package api

import (
	"context"
	"testing"
	"time"
)

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.MaxAttempts != 5 {
		t.Errorf("MaxAttempts = %d, want 5", cfg.MaxAttempts)
	}
	if cfg.BaseDelay != 100*time.Millisecond {
		t.Errorf("BaseDelay = %v, want 100ms", cfg.BaseDelay)
	}
	if cfg.MaxDelay != 30*time.Second {
		t.Errorf("MaxDelay = %v, want 30s", cfg.MaxDelay)
	}
	if cfg.Multiplier != 2.0 {
		t.Errorf("Multiplier = %v, want 2.0", cfg.Multiplier)
	}
	if cfg.RetryableOn == nil {
		t.Error("RetryableOn is nil")
	}
}

func TestRetryConfig_ShouldRetry(t *testing.T) {
	cfg := DefaultRetryConfig()

	tests := []struct {
		name       string
		attempt    int
		statusCode int
		expected   bool
	}{
		{"first attempt, retryable", 1, 503, true},
		{"fourth attempt, retryable", 4, 503, true},
		{"max attempts reached", 5, 503, false},
		{"over max attempts", 6, 503, false},
		{"non-retryable 400", 1, 400, false},
		{"non-retryable 404", 1, 404, false},
		{"non-retryable 429", 1, 429, false},
		{"non-retryable 500", 1, 500, false},
		{"retryable 502", 1, 502, true},
		{"retryable 503", 1, 503, true},
		{"retryable 504", 1, 504, true},
		{"success is not retried", 1, 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cfg.ShouldRetry(tt.attempt, tt.statusCode)
			if result != tt.expected {
				t.Errorf("ShouldRetry(%d, %d) = %v, want %v",
					tt.attempt, tt.statusCode, result, tt.expected)
			}
		})
	}
}

func TestRetryableStatuses(t *testing.T) {
	retryable := RetryableStatuses(418, 503)

	tests := []struct {
		statusCode int
		expected   bool
	}{
		{418, true},
		{503, true},
		{502, false},
		{504, false},
		{200, false},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			if result := retryable(tt.statusCode); result != tt.expected {
				t.Errorf("retryable(%d) = %v, want %v", tt.statusCode, result, tt.expected)
			}
		})
	}
}

func TestRetryConfig_Delay(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     0, // No jitter for predictable tests
	}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, time.Second},      // 1 * 2^0 = 1s
		{1, 2 * time.Second},  // 1 * 2^1 = 2s
		{2, 4 * time.Second},  // 1 * 2^2 = 4s
		{3, 8 * time.Second},  // 1 * 2^3 = 8s
		{4, 16 * time.Second}, // 1 * 2^4 = 16s
		{5, 30 * time.Second}, // 1 * 2^5 = 32s, capped at 30s
		{6, 30 * time.Second}, // Still capped at 30s
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			delay := cfg.Delay(tt.attempt)
			if delay != tt.expected {
				t.Errorf("Delay(%d) = %v, want %v", tt.attempt, delay, tt.expected)
			}
		})
	}
}

func TestRetryConfig_Delay_WithJitter(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     0.5, // 50% jitter
	}

	// With 50% jitter on 1s base delay, the range should be 0.5s to 1.5s
	minDelay := 500 * time.Millisecond
	maxDelay := 1500 * time.Millisecond

	// Run multiple times to verify randomness is within bounds
	for i := 0; i < 100; i++ {
		delay := cfg.Delay(0)
		if delay < minDelay || delay > maxDelay {
			t.Errorf("Delay(0) = %v, expected between %v and %v", delay, minDelay, maxDelay)
		}
	}
}

func TestRetryConfig_Wait(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
		Multiplier: 2.0,
		Jitter:     0,
	}

	ctx := context.Background()
	start := time.Now()

	err := cfg.Wait(ctx, 0)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	elapsed := time.Since(start)
	if elapsed < 10*time.Millisecond {
		t.Errorf("Wait() returned too early: %v", elapsed)
	}
}

func TestRetryConfig_Wait_ContextCancellation(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  10 * time.Second, // Long delay
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     0,
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel after a short delay
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := cfg.Wait(ctx, 0)
	elapsed := time.Since(start)

	if err != context.Canceled {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}

	// Should have returned quickly due to cancellation
	if elapsed > 200*time.Millisecond {
		t.Errorf("Wait() took too long after cancellation: %v", elapsed)
	}
}

func BenchmarkRetryConfig_Delay(b *testing.B) {
	cfg := DefaultRetryConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.Delay(i % 5)
	}
}
