package httpclient

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestRetryDelay_GrowsExponentially(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     10 * time.Second,
		multiplier:      2.0,
	}

	// Sample repeatedly so jitter cannot hide a bad base delay.
	for attempt := 1; attempt <= 3; attempt++ {
		base := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
		lo := time.Duration(base * (1 - jitterRatio))
		hi := time.Duration(base * (1 + jitterRatio))

		for range 100 {
			d := retryDelay(attempt, cfg)
			if d < lo || d > hi {
				t.Errorf("attempt %d: delay %v outside [%v, %v]", attempt, d, lo, hi)
			}
		}
	}
}

func TestRetryDelay_RespectsMaxInterval(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}

	// Uncapped, attempt 10 would be 100ms * 2^9 = 51.2s.
	ceiling := time.Duration(float64(cfg.maxInterval) * (1 + jitterRatio))

	for range 100 {
		if d := retryDelay(10, cfg); d > ceiling {
			t.Errorf("delay %v exceeds capped maximum %v", d, ceiling)
		}
	}
}

func TestRetryDelay_JitterStaysBounded(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     10 * time.Second,
		multiplier:      2.0,
	}

	lo := time.Duration(float64(cfg.initialInterval) * (1 - jitterRatio))
	hi := time.Duration(float64(cfg.initialInterval) * (1 + jitterRatio))

	for range 1000 {
		d := retryDelay(1, cfg)
		if d < lo || d > hi {
			t.Errorf("delay %v outside [%v, %v]", d, lo, hi)
		}
	}
}

func TestShouldRetryError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: false},
		{name: "network error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "generic error", err: errors.New("something failed"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := shouldRetryError(tt.err); got != tt.want {
				t.Errorf("shouldRetryError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestShouldRetryStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{name: "200 OK", statusCode: http.StatusOK, want: false},
		{name: "201 Created", statusCode: http.StatusCreated, want: false},
		{name: "400 Bad Request", statusCode: http.StatusBadRequest, want: false},
		{name: "404 Not Found", statusCode: http.StatusNotFound, want: false},
		{name: "429 Too Many Requests", statusCode: http.StatusTooManyRequests, want: true},
		{name: "500 Internal Server Error", statusCode: http.StatusInternalServerError, want: true},
		{name: "502 Bad Gateway", statusCode: http.StatusBadGateway, want: true},
		{name: "503 Service Unavailable", statusCode: http.StatusServiceUnavailable, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := shouldRetryStatus(tt.statusCode); got != tt.want {
				t.Errorf("shouldRetryStatus(%d) = %v, want %v", tt.statusCode, got, tt.want)
			}
		})
	}
}

func TestRandomUnit_InRange(t *testing.T) {
	t.Parallel()

	for range 1000 {
		v := randomUnit()
		if v < 0 || v >= 1 {
			t.Errorf("randomUnit() = %v, want [0, 1)", v)
		}
	}
}
