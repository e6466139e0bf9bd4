package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

const (
	statusOK       = "ok"
	statusFailing  = "failing"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness endpoints. Readiness runs the
// registry's checks and, for the property backend, reports the circuit
// breaker state so operators can tell an open breaker from a failing check.
type HealthHandler struct {
	registry ports.HealthRegistry
	breakers map[string]ports.BreakerStateReporter
}

// NewHealthHandler creates a HealthHandler. Each breaker is matched to the
// registry check with the same name.
func NewHealthHandler(registry ports.HealthRegistry, breakers ...ports.BreakerStateReporter) *HealthHandler {
	byName := make(map[string]ports.BreakerStateReporter, len(breakers))
	for _, b := range breakers {
		byName[b.Name()] = b
	}
	return &HealthHandler{registry: registry, breakers: byName}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 when every check passes, 503
// otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]dto.CheckResponse, len(results)),
	}
	code := http.StatusOK

	for name, err := range results {
		check := dto.CheckResponse{Status: statusOK}
		if err != nil {
			check.Status = statusFailing
			check.Error = err.Error()
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
		}
		if b, ok := h.breakers[name]; ok {
			check.CircuitBreaker = b.CircuitBreakerState()
		}
		resp.Checks[name] = check
	}

	writeJSON(w, code, resp)
}
