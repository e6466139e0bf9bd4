package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/platform/telemetry"
)

// Entity names used in logs and the repository outcome metric.
const (
	entityProperty = "property"
	entityOwner    = "owner"
	entityImage    = "property_image"
	entityTrace    = "property_trace"
)

// base carries what every repository needs: the requester for transport,
// metrics for outcome counting, and a logger for recovered panics.
type base struct {
	req     *Requester
	metrics *telemetry.Metrics
	logger  *slog.Logger
	entity  string
}

// guard runs fn, converting a panic into an UNKNOWN_ERROR failure, and
// records the outcome. No panic escapes a repository method.
func guard[T any](ctx context.Context, b *base, operation string, fn func() domain.Result[T]) (res domain.Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			b.logger.ErrorContext(ctx, "repository panic recovered",
				slog.String("entity", b.entity),
				slog.String("operation", operation),
				slog.String("panic", fmt.Sprint(p)),
			)
			res = domain.Fail[T](domain.UnknownError())
		}

		code := ""
		if err := res.Err(); err != nil {
			code = err.Code
		}
		b.metrics.RecordRepositoryResult(ctx, b.entity, operation, code)
	}()

	return fn()
}

// one decodes a single entity and adapts it. A null body is a failure so a
// successful Result always carries an entity.
func one[D, E any](ctx context.Context, b *base, method, path string, body any, adapt func(*D) *E) domain.Result[*E] {
	var dto *D
	if err := b.req.Do(ctx, method, path, nil, body, &dto); err != nil {
		return domain.Fail[*E](err)
	}
	out := adapt(dto)
	if out == nil {
		return domain.Fail[*E](emptyEntity())
	}
	return domain.OK(out)
}

// many decodes a list and adapts it. A null body yields an empty list.
func many[D, E any](ctx context.Context, b *base, method, path string, query map[string]any, body any, adapt func([]*D) []E) domain.Result[[]E] {
	var dtos []*D
	if err := b.req.Do(ctx, method, path, query, body, &dtos); err != nil {
		return domain.Fail[[]E](err)
	}
	return domain.OK(adapt(dtos))
}

// none issues a call whose response body is ignored.
func none(ctx context.Context, b *base, method, path string) domain.Result[domain.Empty] {
	if err := b.req.Do(ctx, method, path, nil, nil, nil); err != nil {
		return domain.Fail[domain.Empty](err)
	}
	return domain.OK(domain.Empty{})
}
