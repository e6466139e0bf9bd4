package config

const (
	defaultServerPort     = 8080
	defaultDetailsWorkers = 3

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCORSMaxAge = 300
)

// DefaultBaseURL is the local development backend used when nothing else
// sets client.base_url.
const DefaultBaseURL = "http://localhost:5000/api"

// defaults returns the lowest-precedence configuration layer.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "20s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "15s",
		"server.details_workers": defaultDetailsWorkers,

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        DefaultBaseURL,
		"client.timeout":                         "10s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"cors.allowed_origins": []string{"http://localhost:3000"},
		"cors.max_age":         defaultCORSMaxAge,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "property-manager",
	}
}
