// Package app provides the application services. Each entity service is a
// validating decorator: it implements the same port as the repository it
// wraps, runs the entity's ordered business rules, and only calls the
// repository once every rule passes.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/property-manager/internal/domain"
)

// nopLogger is used when a service is built without a logger.
func nopLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// reject logs a validation failure and wraps it in a Result. The repository
// is never called on this path.
func reject[T any](ctx context.Context, logger *slog.Logger, entity, operation string, err *domain.Error) domain.Result[T] {
	logger.DebugContext(ctx, "request rejected by validation",
		slog.String("entity", entity),
		slog.String("operation", operation),
		slog.String("code", err.Code),
	)
	return domain.Fail[T](err)
}
