// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Standard returns the chain in order:
//
//	Recovery → RequestID → RealIP → OpenTelemetry → Logging → Timeout → Handler
//
// RealIP comes from chi's middleware package and the rest live here. Each
// middleware is a func(http.Handler) http.Handler and can be composed with
// Chain.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/property-manager/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Standard returns the API's middleware, outermost first. RealIP runs before
// OpenTelemetry and Logging so both see the client address rather than the
// load balancer's. metrics may be nil.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics, requestTimeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		chimw.RealIP,
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(requestTimeout),
	}
}
