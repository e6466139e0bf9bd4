// Package health keeps the set of components readiness checks.
// Checks run concurrently, each under its own deadline, so a stalled
// dependency cannot hold readiness past its budget.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/property-manager/internal/app/fanout"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// maxConcurrentChecks bounds the goroutines a single CheckAll may start.
const maxConcurrentChecks = 4

// Registry is a concurrency-safe [ports.HealthRegistry]. Checkers are keyed
// by name; registering a name again replaces the earlier checker.
type Registry struct {
	checkTimeout time.Duration

	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New creates an empty registry. checkTimeout caps every individual check;
// zero leaves checks bounded only by the caller's context.
func New(checkTimeout time.Duration) *Registry {
	return &Registry{
		checkTimeout: checkTimeout,
		checkers:     make(map[string]ports.HealthChecker),
	}
}

// Register adds or replaces the checker for checker.Name().
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll runs every registered check and returns the outcomes keyed by
// checker name; nil means healthy. A check that overruns checkTimeout
// reports a timeout error naming the checker.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	names := make([]string, 0, len(r.checkers))
	checkers := make([]ports.HealthChecker, 0, len(r.checkers))
	for name, c := range r.checkers {
		names = append(names, name)
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, maxConcurrentChecks, checkers, r.check)

	results := make(map[string]error, len(names))
	for i, name := range names {
		results[name] = outcomes[i].Err
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
	if r.checkTimeout <= 0 {
		return struct{}{}, c.HealthCheck(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, r.checkTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return struct{}{}, err
	case <-ctx.Done():
		return struct{}{}, fmt.Errorf("%s: check did not finish within %s: %w", c.Name(), r.checkTimeout, ctx.Err())
	}
}
