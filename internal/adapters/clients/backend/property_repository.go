package backend

import (
	"context"
	"log/slog"
	"net/http"

	propertydto "github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend/property"
	"github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend/transform"
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/platform/telemetry"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// Compile-time interface check.
var _ ports.PropertyRepository = (*PropertyRepository)(nil)

// PropertyRepository is the outbound adapter for /properties. Each method
// issues one backend call and adapts the response through the translators
// in [propertydto].
type PropertyRepository struct {
	base
}

// NewPropertyRepository creates a PropertyRepository.
func NewPropertyRepository(req *Requester, metrics *telemetry.Metrics, logger *slog.Logger) *PropertyRepository {
	return &PropertyRepository{base{req: req, metrics: metrics, logger: logger, entity: entityProperty}}
}

// GetAll lists properties, sending the filter as query parameters.
func (r *PropertyRepository) GetAll(ctx context.Context, filter property.Filter) domain.Result[[]property.Property] {
	return guard(ctx, &r.base, "get_all", func() domain.Result[[]property.Property] {
		return many(ctx, &r.base, http.MethodGet, endpoint("properties"), propertydto.FilterParams(filter), nil, propertydto.ToDomainPropertyList)
	})
}

// GetAllPaginated lists one page of properties. Zero page values are not
// sent so the backend applies its defaults.
func (r *PropertyRepository) GetAllPaginated(ctx context.Context, filter property.Filter, page domain.PageRequest) domain.Result[domain.Page[property.Property]] {
	return guard(ctx, &r.base, "get_all_paginated", func() domain.Result[domain.Page[property.Property]] {
		query := propertydto.FilterParams(filter)
		if page.PageNumber > 0 {
			query["pageNumber"] = page.PageNumber
		}
		if page.PageSize > 0 {
			query["pageSize"] = page.PageSize
		}

		var dto *transform.PaginatedDTO[*propertydto.PropertyDTO]
		if err := r.req.Do(ctx, http.MethodGet, endpoint("properties", "search", "paginated"), query, nil, &dto); err != nil {
			return domain.Fail[domain.Page[property.Property]](err)
		}
		if dto == nil {
			return domain.Fail[domain.Page[property.Property]](emptyEntity())
		}
		return domain.OK(propertydto.ToDomainPropertyPage(dto))
	})
}

// GetByID fetches one property.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) domain.Result[*property.Property] {
	return guard(ctx, &r.base, "get_by_id", func() domain.Result[*property.Property] {
		return one(ctx, &r.base, http.MethodGet, endpoint("properties", id), nil, propertydto.ToDomainProperty)
	})
}

// Create registers a property.
func (r *PropertyRepository) Create(ctx context.Context, req property.CreateRequest) domain.Result[*property.Property] {
	return guard(ctx, &r.base, "create", func() domain.Result[*property.Property] {
		body := propertydto.ToCreatePropertyDTO(&req)
		return one(ctx, &r.base, http.MethodPost, endpoint("properties"), body, propertydto.ToDomainProperty)
	})
}

// Update sends the changed property fields with PUT.
func (r *PropertyRepository) Update(ctx context.Context, req property.UpdateRequest) domain.Result[*property.Property] {
	return guard(ctx, &r.base, "update", func() domain.Result[*property.Property] {
		body := propertydto.ToUpdatePropertyDTO(&req)
		return one(ctx, &r.base, http.MethodPut, endpoint("properties", req.ID), body, propertydto.ToDomainProperty)
	})
}

// Delete removes a property. Each call reaches the backend; a repeat
// delete reports whatever the backend answers.
func (r *PropertyRepository) Delete(ctx context.Context, id string) domain.Result[domain.Empty] {
	return guard(ctx, &r.base, "delete", func() domain.Result[domain.Empty] {
		return none(ctx, &r.base, http.MethodDelete, endpoint("properties", id))
	})
}
