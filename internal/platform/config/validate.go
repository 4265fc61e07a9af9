package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks every section and returns the joined errors, so a broken
// config reports all of its problems at once.
func (c *Config) Validate() error {
	var errs []error
	errs = append(errs, c.Server.validate()...)
	errs = append(errs, c.Log.validate()...)
	errs = append(errs, c.Store.validate()...)
	errs = append(errs, c.Client.validate()...)
	errs = append(errs, c.Telemetry.validate()...)
	return errors.Join(errs...)
}

func oneOf(value string, allowed ...string) bool {
	return slices.Contains(allowed, value)
}

func (s *ServerConfig) validate() []error {
	var errs []error
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	return errs
}

func (l *LogConfig) validate() []error {
	var errs []error
	if !oneOf(l.Level, "debug", "info", "warn", "error") {
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}
	if !oneOf(l.Format, "json", "text") {
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}
	return errs
}

func (st *StoreConfig) validate() []error {
	if st.MaxResolveDepth < 0 {
		return []error{fmt.Errorf("store.max_resolve_depth must be >= 0, got %d", st.MaxResolveDepth)}
	}
	return nil
}

func (cl *ClientConfig) validate() []error {
	var errs []error
	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}

	rl := cl.RateLimit
	if rl.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be >= 0, got %f",
			rl.RequestsPerSecond))
	}
	if rl.RequestsPerSecond > 0 && rl.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d",
			rl.BurstSize))
	}
	return errs
}

func (t *TelemetryConfig) validate() []error {
	if !t.Enabled {
		return nil
	}

	var errs []error
	if !oneOf(t.Exporter, "stdout", "otlp") {
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}
	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	return errs
}
