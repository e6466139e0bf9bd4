// Package main is the entry point for the property manager BFF. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
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

	adapthttp "github.com/jsamuelsen11/property-manager/internal/adapters/http"
	"github.com/jsamuelsen11/property-manager/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/property-manager/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend"
	"github.com/jsamuelsen11/property-manager/internal/app"
	"github.com/jsamuelsen11/property-manager/internal/platform/config"
	"github.com/jsamuelsen11/property-manager/internal/platform/health"
	"github.com/jsamuelsen11/property-manager/internal/platform/httpclient"
	"github.com/jsamuelsen11/property-manager/internal/platform/logging"
	"github.com/jsamuelsen11/property-manager/internal/platform/telemetry"
	"github.com/jsamuelsen11/property-manager/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	backendServiceName = "property-api"
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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Info("configuration loaded",
		slog.String("profile", profile),
		slog.String("backend", cfg.Client.BaseURL),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
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

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, backendServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*backend.Requester, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return backend.NewRequester(client, logger), nil
	})

	// Outbound repositories are wrapped by the validating services, which
	// implement the same ports. Everything downstream sees only the services.
	do.Provide(injector, func(i do.Injector) (ports.PropertyRepository, error) {
		req := do.MustInvoke[*backend.Requester](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewPropertyService(backend.NewPropertyRepository(req, metrics, logger), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OwnerRepository, error) {
		req := do.MustInvoke[*backend.Requester](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewOwnerService(backend.NewOwnerRepository(req, metrics, logger), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PropertyImageRepository, error) {
		req := do.MustInvoke[*backend.Requester](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewImageService(backend.NewImageRepository(req, metrics, logger), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PropertyTraceRepository, error) {
		req := do.MustInvoke[*backend.Requester](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTraceService(backend.NewTraceRepository(req, metrics, logger), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PropertyDetailsService, error) {
		return app.NewDetailsService(
			do.MustInvoke[ports.PropertyRepository](i),
			do.MustInvoke[ports.OwnerRepository](i),
			do.MustInvoke[ports.PropertyImageRepository](i),
			do.MustInvoke[ports.PropertyTraceRepository](i),
			cfg.Server.DetailsWorkers,
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*backend.Health, error) {
		return backend.NewHealth(do.MustInvoke[*backend.Requester](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(cfg.Client.Timeout)
		registry.Register(do.MustInvoke[*backend.Health](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return adapthttp.Handlers{
			Properties: handlers.NewPropertyHandler(
				do.MustInvoke[ports.PropertyRepository](i),
				do.MustInvoke[ports.PropertyDetailsService](i),
			),
			Owners: handlers.NewOwnerHandler(do.MustInvoke[ports.OwnerRepository](i)),
			Images: handlers.NewImageHandler(do.MustInvoke[ports.PropertyImageRepository](i)),
			Traces: handlers.NewTraceHandler(do.MustInvoke[ports.PropertyTraceRepository](i)),
			Health: handlers.NewHealthHandler(
				do.MustInvoke[ports.HealthRegistry](i),
				do.MustInvoke[*backend.Health](i),
			),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, cfg.CORS,
			middleware.Standard(logger, metrics, cfg.Server.RequestTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
