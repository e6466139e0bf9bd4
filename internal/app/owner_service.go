package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// Compile-time check that OwnerService decorates the repository port.
var _ ports.OwnerRepository = (*OwnerService)(nil)

// OwnerService validates owner operations before delegating.
type OwnerService struct {
	repo   ports.OwnerRepository
	logger *slog.Logger
}

// NewOwnerService wraps repo. A nil logger discards output.
func NewOwnerService(repo ports.OwnerRepository, logger *slog.Logger) *OwnerService {
	return &OwnerService{repo: repo, logger: nopLogger(logger)}
}

func (s *OwnerService) GetAll(ctx context.Context) domain.Result[[]owner.Owner] {
	return s.repo.GetAll(ctx)
}

func (s *OwnerService) GetByID(ctx context.Context, id string) domain.Result[*owner.Owner] {
	if err := owner.ValidateID(id)(); err != nil {
		return reject[*owner.Owner](ctx, s.logger, "owner", "get_by_id", err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *OwnerService) Create(ctx context.Context, req owner.CreateRequest) domain.Result[*owner.Owner] {
	if err := req.Validate(); err != nil {
		return reject[*owner.Owner](ctx, s.logger, "owner", "create", err)
	}
	return s.repo.Create(ctx, req)
}

func (s *OwnerService) Update(ctx context.Context, req owner.UpdateRequest) domain.Result[*owner.Owner] {
	if err := req.Validate(); err != nil {
		return reject[*owner.Owner](ctx, s.logger, "owner", "update", err)
	}
	return s.repo.Update(ctx, req)
}

func (s *OwnerService) Delete(ctx context.Context, id string) domain.Result[domain.Empty] {
	if err := owner.ValidateID(id)(); err != nil {
		return reject[domain.Empty](ctx, s.logger, "owner", "delete", err)
	}
	return s.repo.Delete(ctx, id)
}
