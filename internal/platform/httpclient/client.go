// Package httpclient wraps http.Client with the outbound-call plumbing every
// downstream dependency needs: a circuit breaker, optional rate limiting,
// retry with exponential backoff, OpenTelemetry client spans, and propagation
// of request and correlation IDs.
//
// Requests pass through the layers in this order:
//
//	Circuit Breaker -> Rate Limiter -> Header Injection -> OTEL Span -> Retry -> HTTP
//
// Construction:
//
//	client := httpclient.New(&cfg.Client, "catalog-api", metrics, logger)
//
// Executing requests:
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware seeds the context for header injection:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/mwhitaker/statekit/internal/platform/config"
	"github.com/mwhitaker/statekit/internal/platform/telemetry"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores a request ID for outbound header injection. Inbound
// middleware calls this so downstream services see the same X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores a correlation ID for outbound header injection.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// retryConfig mirrors config.RetryConfig in unexported form so the config
// package does not leak through this package's API.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is the instrumented HTTP client used for all downstream calls.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a client for one downstream service. serviceName labels that
// service in traces, metrics, and health output, e.g. "catalog-api". A nil
// metrics value disables metric recording.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     newBreaker(&cfg.CircuitBreaker, serviceName, logger),
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), cfg.RateLimit.BurstSize)
	}
	return c
}

// newBreaker trips after the configured run of consecutive failures and logs
// every state transition.
func newBreaker(cfg *config.CircuitBreakerConfig, name string, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	maxFailures := cfg.MaxFailures

	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do runs the request through the full outbound pipeline. The request context
// drives cancellation, tracing, and ID header propagation.
//
// On success the response body is open and the caller must close it. When
// retries are exhausted on a retryable status, both resp (body open) and err
// are non-nil. Breaker rejections and network errors return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, c.send(ctx, req, &resp)
	})

	c.recordMetrics(ctx, method, start, resp, err)

	return resp, err
}

// send is the breaker-protected portion of Do.
func (c *Client) send(ctx context.Context, req *http.Request, resp **http.Response) error {
	if err := c.waitForRateLimit(ctx); err != nil {
		return err
	}

	c.injectHeaders(ctx, req)

	spanCtx, span := c.startSpan(ctx, req)
	defer span.End()

	// The span context must reach http.Client.Do for cancellation and
	// trace propagation.
	req = req.WithContext(spanCtx)

	retryErr := c.doWithRetry(spanCtx, req, resp)
	c.finishSpan(span, *resp, retryErr)

	return retryErr
}

// BaseURL reports the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name reports the downstream service identifier. With HealthCheck it makes
// Client satisfy ports.HealthChecker structurally, without importing ports.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports downstream availability from the breaker state alone;
// no probe request is sent. Closed means healthy, half-open means the breaker
// is testing recovery, open means the downstream is being rejected outright.
//
// This describes the downstream, not this service: the service stays ready
// even while a dependency is failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

// waitForRateLimit blocks for a limiter token or ctx cancellation. Returns
// nil immediately when limiting is disabled.
func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// injectHeaders copies request and correlation IDs from the context onto the
// outbound request.
func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

// startSpan opens a client span for the request and injects W3C Trace Context
// into its headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	ctx, span := tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so rejected calls are still counted.
// Safe with nil metrics.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(callResult(status, err)),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// callResult classifies the outcome for the result metric attribute.
func callResult(status int, err error) string {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "circuit_open"
	}
	if status > 0 && status < http.StatusBadRequest {
		return "success"
	}
	return "error"
}

// toUint32 clamps an int into uint32 range; negatives become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
