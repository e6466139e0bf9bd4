package backend

import (
	"context"
	"log/slog"
	"net/http"

	tracedto "github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend/trace"
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
	"github.com/jsamuelsen11/property-manager/internal/platform/telemetry"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// Compile-time interface check.
var _ ports.PropertyTraceRepository = (*TraceRepository)(nil)

// TraceRepository is the outbound adapter for /properties/{id}/traces.
type TraceRepository struct {
	base
}

// NewTraceRepository creates a TraceRepository.
func NewTraceRepository(req *Requester, metrics *telemetry.Metrics, logger *slog.Logger) *TraceRepository {
	return &TraceRepository{base{req: req, metrics: metrics, logger: logger, entity: entityTrace}}
}

// GetByProperty lists the sale history of one property.
func (r *TraceRepository) GetByProperty(ctx context.Context, propertyID string) domain.Result[[]trace.Trace] {
	return guard(ctx, &r.base, "get_by_property", func() domain.Result[[]trace.Trace] {
		return many(ctx, &r.base, http.MethodGet, endpoint("properties", propertyID, "traces"), nil, nil, tracedto.ToDomainTraceList)
	})
}

// Create records a trace under req.PropertyID.
func (r *TraceRepository) Create(ctx context.Context, req trace.CreateRequest) domain.Result[*trace.Trace] {
	return guard(ctx, &r.base, "create", func() domain.Result[*trace.Trace] {
		path := endpoint("properties", req.PropertyID, "traces")
		return one(ctx, &r.base, http.MethodPost, path, tracedto.ToCreateTraceDTO(&req), tracedto.ToDomainTrace)
	})
}

// Update sends the changed trace fields with PUT.
func (r *TraceRepository) Update(ctx context.Context, req trace.UpdateRequest) domain.Result[*trace.Trace] {
	return guard(ctx, &r.base, "update", func() domain.Result[*trace.Trace] {
		path := endpoint("properties", req.PropertyID, "traces", req.ID)
		return one(ctx, &r.base, http.MethodPut, path, tracedto.ToUpdateTraceDTO(&req), tracedto.ToDomainTrace)
	})
}

// Delete removes one trace of a property.
func (r *TraceRepository) Delete(ctx context.Context, propertyID, id string) domain.Result[domain.Empty] {
	return guard(ctx, &r.base, "delete", func() domain.Result[domain.Empty] {
		return none(ctx, &r.base, http.MethodDelete, endpoint("properties", propertyID, "traces", id))
	})
}
