package backend

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.HealthChecker        = (*Health)(nil)
	_ ports.BreakerStateReporter = (*Health)(nil)
)

// Health reports the property backend's availability from the circuit
// breaker state. No network call is made.
type Health struct {
	req *Requester
}

// NewHealth creates a Health checker over the requester's client.
func NewHealth(req *Requester) *Health {
	return &Health{req: req}
}

// Name matches the service name the underlying client uses for tracing and
// metrics.
func (h *Health) Name() string {
	return h.req.ServiceName()
}

// CircuitBreakerState is the state of the breaker in front of the backend.
func (h *Health) CircuitBreakerState() string {
	return h.req.CircuitBreakerState()
}

// HealthCheck maps breaker states: closed is healthy, half-open is
// degraded, open is failing.
//
// This reports downstream status, not service readiness. Tying readiness to
// the backend would keep the breaker from ever recovering once traffic
// stopped being routed here.
func (h *Health) HealthCheck(_ context.Context) error {
	name := h.Name()
	switch state := h.CircuitBreakerState(); state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", name)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", name, state)
	}
}
