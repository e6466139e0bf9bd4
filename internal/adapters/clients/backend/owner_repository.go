package backend

import (
	"context"
	"log/slog"
	"net/http"

	ownerdto "github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend/owner"
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
	"github.com/jsamuelsen11/property-manager/internal/platform/telemetry"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// Compile-time interface check.
var _ ports.OwnerRepository = (*OwnerRepository)(nil)

// OwnerRepository is the outbound adapter for /owners.
type OwnerRepository struct {
	base
}

// NewOwnerRepository creates an OwnerRepository.
func NewOwnerRepository(req *Requester, metrics *telemetry.Metrics, logger *slog.Logger) *OwnerRepository {
	return &OwnerRepository{base{req: req, metrics: metrics, logger: logger, entity: entityOwner}}
}

// GetAll lists every owner.
func (r *OwnerRepository) GetAll(ctx context.Context) domain.Result[[]owner.Owner] {
	return guard(ctx, &r.base, "get_all", func() domain.Result[[]owner.Owner] {
		return many(ctx, &r.base, http.MethodGet, endpoint("owners"), nil, nil, ownerdto.ToDomainOwnerList)
	})
}

// GetByID fetches one owner.
func (r *OwnerRepository) GetByID(ctx context.Context, id string) domain.Result[*owner.Owner] {
	return guard(ctx, &r.base, "get_by_id", func() domain.Result[*owner.Owner] {
		return one(ctx, &r.base, http.MethodGet, endpoint("owners", id), nil, ownerdto.ToDomainOwner)
	})
}

// Create registers an owner.
func (r *OwnerRepository) Create(ctx context.Context, req owner.CreateRequest) domain.Result[*owner.Owner] {
	return guard(ctx, &r.base, "create", func() domain.Result[*owner.Owner] {
		return one(ctx, &r.base, http.MethodPost, endpoint("owners"), ownerdto.ToCreateOwnerDTO(&req), ownerdto.ToDomainOwner)
	})
}

// Update sends the changed owner fields with PUT.
func (r *OwnerRepository) Update(ctx context.Context, req owner.UpdateRequest) domain.Result[*owner.Owner] {
	return guard(ctx, &r.base, "update", func() domain.Result[*owner.Owner] {
		return one(ctx, &r.base, http.MethodPut, endpoint("owners", req.ID), ownerdto.ToUpdateOwnerDTO(&req), ownerdto.ToDomainOwner)
	})
}

// Delete removes an owner.
func (r *OwnerRepository) Delete(ctx context.Context, id string) domain.Result[domain.Empty] {
	return guard(ctx, &r.base, "delete", func() domain.Result[domain.Empty] {
		return none(ctx, &r.base, http.MethodDelete, endpoint("owners", id))
	})
}
