package ports

import "context"

// HealthChecker reports whether a single dependency is usable, for example
// the downstream catalog API.
type HealthChecker interface {
	// Name identifies the component in readiness responses,
	// e.g. "catalog-api".
	Name() string

	// HealthCheck returns nil when the component is healthy and an error
	// describing the problem otherwise. Implementations must honor ctx
	// cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects HealthCheckers and runs them for the readiness
// endpoint.
type HealthRegistry interface {
	// Register adds a checker to the set.
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the outcomes keyed
	// by checker name; a nil value means the component is healthy.
	CheckAll(ctx context.Context) map[string]error
}
