package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/mwhitaker/statekit/internal/platform/logging"
)

// jitterRatio bounds the random spread applied to each backoff delay (±25%).
const jitterRatio = 0.25

// doWithRetry sends the request, retrying transient failures with exponential
// backoff. The body is buffered up front so every attempt can replay it. The
// response is written through resp instead of being returned, which keeps the
// bodyclose linter from flagging intermediate attempts; closing the final
// body is the caller's job.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return err
	}

	var lastErr error

	for attempt := range c.retryCfg.maxAttempts {
		if attempt > 0 {
			if err := c.sleepBeforeRetry(ctx, req, attempt, lastErr); err != nil {
				return err
			}
		}

		restoreBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !shouldRetryError(err) {
				return err
			}
			lastErr = err
			continue
		}

		if !shouldRetryStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)

		// Out of attempts: hand the response back with its body intact so
		// the caller can inspect it.
		if attempt == c.retryCfg.maxAttempts-1 {
			*resp = r
			return lastErr
		}

		discardBody(r)
	}

	return lastErr
}

// snapshotBody consumes and closes the request body so it can be replayed
// across attempts. A nil body yields nil bytes.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return b, nil
}

// restoreBody installs a fresh reader over the snapshot. Does nothing when
// there was no body.
func restoreBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discardBody drains and closes a response body so the underlying connection
// can be reused by the next attempt.
func discardBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// sleepBeforeRetry logs the upcoming attempt and blocks for the computed
// backoff, or returns early if ctx is canceled first.
func (c *Client) sleepBeforeRetry(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := retryDelay(attempt, c.retryCfg)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// retryDelay computes the backoff for a 1-indexed retry attempt: exponential
// growth capped at maxInterval, then ±25% jitter so concurrent clients spread
// out.
func retryDelay(attempt int, cfg retryConfig) time.Duration {
	d := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	if d > float64(cfg.maxInterval) {
		d = float64(cfg.maxInterval)
	}

	spread := d * jitterRatio
	d += spread * (2*randomUnit() - 1)

	if d < 0 {
		d = 0
	}

	return time.Duration(d)
}

// Mantissa width of a float64, used to turn random bits into a uniform unit
// value without bias.
const (
	mantissaBits = 53
	wordBits     = 64
)

// randomUnit returns a uniform float64 in [0, 1) drawn from crypto/rand.
func randomUnit() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(wordBits-mantissaBits)) / float64(uint64(1)<<mantissaBits)
}

// shouldRetryError reports whether a transport error is worth another
// attempt. Cancellation and deadline expiry are final; network failures and
// anything unrecognized are retried.
func shouldRetryError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return true
}

// shouldRetryStatus reports whether a response status warrants a retry:
// any 5xx, plus 429 Too Many Requests.
func shouldRetryStatus(statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	return statusCode >= http.StatusInternalServerError
}
