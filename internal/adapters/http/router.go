// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/property-manager/internal/platform/config"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Properties *handlers.PropertyHandler
	Owners     *handlers.OwnerHandler
	Images     *handlers.ImageHandler
	Traces     *handlers.TraceHandler
	Health     *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given, followed by CORS for
// the configured browser origins.
func NewRouter(h Handlers, corsCfg config.CORSConfig, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         corsCfg.MaxAge,
	}))

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/owners", func(r chi.Router) {
			r.Get("/", h.Owners.ListOwners)
			r.Post("/", h.Owners.CreateOwner)
			r.Get("/{id}", h.Owners.GetOwner)
			r.Put("/{id}", h.Owners.UpdateOwner)
			r.Delete("/{id}", h.Owners.DeleteOwner)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.Properties.ListProperties)
			r.Post("/", h.Properties.CreateProperty)
			r.Get("/search/paginated", h.Properties.SearchProperties)
			r.Route("/{propertyId}", func(r chi.Router) {
				r.Get("/", h.Properties.GetProperty)
				r.Put("/", h.Properties.UpdateProperty)
				r.Delete("/", h.Properties.DeleteProperty)
				r.Get("/details", h.Properties.GetPropertyDetails)

				r.Route("/images", func(r chi.Router) {
					r.Get("/", h.Images.ListImages)
					r.Post("/", h.Images.CreateImage)
					r.Post("/bulk", h.Images.CreateImagesBulk)
					r.Put("/{id}", h.Images.UpdateImage)
					r.Delete("/{id}", h.Images.DeleteImage)
					r.Patch("/{id}/toggle", h.Images.ToggleImage)
				})

				r.Route("/traces", func(r chi.Router) {
					r.Get("/", h.Traces.ListTraces)
					r.Post("/", h.Traces.CreateTrace)
					r.Put("/{id}", h.Traces.UpdateTrace)
					r.Delete("/{id}", h.Traces.DeleteTrace)
				})
			})
		})
	})

	return r
}
