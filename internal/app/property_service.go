package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// Compile-time check that PropertyService decorates the repository port.
var _ ports.PropertyRepository = (*PropertyService)(nil)

// PropertyService validates property operations before delegating to the
// wrapped repository. Repository results are returned unmodified.
type PropertyService struct {
	repo   ports.PropertyRepository
	logger *slog.Logger
}

// NewPropertyService wraps repo. A nil logger discards output.
func NewPropertyService(repo ports.PropertyRepository, logger *slog.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: nopLogger(logger)}
}

// GetAll passes through; listing has no preconditions.
func (s *PropertyService) GetAll(ctx context.Context, filter property.Filter) domain.Result[[]property.Property] {
	return s.repo.GetAll(ctx, filter)
}

// GetAllPaginated passes through.
func (s *PropertyService) GetAllPaginated(ctx context.Context, filter property.Filter, page domain.PageRequest) domain.Result[domain.Page[property.Property]] {
	return s.repo.GetAllPaginated(ctx, filter, page)
}

func (s *PropertyService) GetByID(ctx context.Context, id string) domain.Result[*property.Property] {
	if err := property.ValidateID(id)(); err != nil {
		return reject[*property.Property](ctx, s.logger, "property", "get_by_id", err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *PropertyService) Create(ctx context.Context, req property.CreateRequest) domain.Result[*property.Property] {
	if err := req.Validate(); err != nil {
		return reject[*property.Property](ctx, s.logger, "property", "create", err)
	}
	return s.repo.Create(ctx, req)
}

func (s *PropertyService) Update(ctx context.Context, req property.UpdateRequest) domain.Result[*property.Property] {
	if err := req.Validate(); err != nil {
		return reject[*property.Property](ctx, s.logger, "property", "update", err)
	}
	return s.repo.Update(ctx, req)
}

func (s *PropertyService) Delete(ctx context.Context, id string) domain.Result[domain.Empty] {
	if err := property.ValidateID(id)(); err != nil {
		return reject[domain.Empty](ctx, s.logger, "property", "delete", err)
	}
	return s.repo.Delete(ctx, id)
}
