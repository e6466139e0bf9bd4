package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// Compile-time check that TraceService decorates the repository port.
var _ ports.PropertyTraceRepository = (*TraceService)(nil)

// TraceService validates property trace operations before delegating.
type TraceService struct {
	repo   ports.PropertyTraceRepository
	logger *slog.Logger
}

// NewTraceService wraps repo. A nil logger discards output.
func NewTraceService(repo ports.PropertyTraceRepository, logger *slog.Logger) *TraceService {
	return &TraceService{repo: repo, logger: nopLogger(logger)}
}

func (s *TraceService) GetByProperty(ctx context.Context, propertyID string) domain.Result[[]trace.Trace] {
	if err := property.ValidateID(propertyID)(); err != nil {
		return reject[[]trace.Trace](ctx, s.logger, "property_trace", "get_by_property", err)
	}
	return s.repo.GetByProperty(ctx, propertyID)
}

func (s *TraceService) Create(ctx context.Context, req trace.CreateRequest) domain.Result[*trace.Trace] {
	if err := req.Validate(); err != nil {
		return reject[*trace.Trace](ctx, s.logger, "property_trace", "create", err)
	}
	return s.repo.Create(ctx, req)
}

func (s *TraceService) Update(ctx context.Context, req trace.UpdateRequest) domain.Result[*trace.Trace] {
	if err := req.Validate(); err != nil {
		return reject[*trace.Trace](ctx, s.logger, "property_trace", "update", err)
	}
	return s.repo.Update(ctx, req)
}

func (s *TraceService) Delete(ctx context.Context, propertyID, id string) domain.Result[domain.Empty] {
	if err := trace.ValidateScope(propertyID, id); err != nil {
		return reject[domain.Empty](ctx, s.logger, "property_trace", "delete", err)
	}
	return s.repo.Delete(ctx, propertyID, id)
}
