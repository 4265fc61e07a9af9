// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/mwhitaker/statekit/internal/adapters/http"
	"github.com/mwhitaker/statekit/internal/adapters/http/handlers"
	"github.com/mwhitaker/statekit/internal/adapters/http/middleware"

	"github.com/mwhitaker/statekit/internal/adapters/clients/catalog"
	"github.com/mwhitaker/statekit/internal/app"
	"github.com/mwhitaker/statekit/internal/app/store"
	"github.com/mwhitaker/statekit/internal/platform/config"
	"github.com/mwhitaker/statekit/internal/platform/health"
	"github.com/mwhitaker/statekit/internal/platform/httpclient"
	"github.com/mwhitaker/statekit/internal/platform/logging"
	"github.com/mwhitaker/statekit/internal/platform/telemetry"
	"github.com/mwhitaker/statekit/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, levelVar := logging.NewDynamic(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	watchLogLevel(ctx, logger, levelVar, profile)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	server, registry, client, err := buildGraph(cfg, logger, otel.metrics)
	if err != nil {
		return err
	}
	registry.Register(client)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdown(server, otel, serverErr, logger)
	return nil
}

// watchLogLevel hot-reloads the log level from the config files. Every other
// setting requires a restart.
func watchLogLevel(ctx context.Context, logger *slog.Logger, levelVar *slog.LevelVar, profile string) {
	go func() {
		err := config.Watch(ctx, logger, profile, "configs", func(updated *config.Config) {
			logging.SetLevel(levelVar, updated.Log.Level)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("config watcher stopped", slog.Any("error", err))
		}
	}()
}

// buildGraph wires the DI container and resolves the server, the health
// registry, and the downstream client that registers into it.
func buildGraph(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) (*adapthttp.Server, ports.HealthRegistry, *httpclient.Client, error) {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	registerDependencies(injector, cfg, logger)

	// Resolving the server eagerly wires the full graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	client := do.MustInvoke[*httpclient.Client](injector)
	return server, registry, client, nil
}

// shutdown drains in-flight HTTP requests, waits for the server goroutine,
// and flushes telemetry.
func shutdown(server *adapthttp.Server, otel *otelProviders, serverErr <-chan error, logger *slog.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}
	tcfg := cfg.Telemetry

	tp, err := telemetry.InitTracer(ctx, tcfg.ServiceName, tcfg.Exporter, tcfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, tcfg.ServiceName, tcfg.Exporter, tcfg.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "catalog-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CatalogClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return catalog.NewClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		if metrics == nil {
			return store.New(logger), nil
		}
		return store.New(logger, store.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StateService, error) {
		st := do.MustInvoke[ports.Store](i)
		client := do.MustInvoke[ports.CatalogClient](i)
		return app.NewCatalogService(st, client, logger, cfg.Store.MaxResolveDepth)
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ArticleHandler, error) {
		svc := do.MustInvoke[ports.StateService](i)
		return handlers.NewArticleHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ActionHandler, error) {
		svc := do.MustInvoke[ports.StateService](i)
		return handlers.NewActionHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		articleH := do.MustInvoke[*handlers.ArticleHandler](i)
		actionH := do.MustInvoke[*handlers.ActionHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(articleH, actionH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
