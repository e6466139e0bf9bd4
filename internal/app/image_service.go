package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/image"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// Compile-time check that ImageService decorates the repository port.
var _ ports.PropertyImageRepository = (*ImageService)(nil)

// ImageService validates property image operations before delegating.
// Every operation is scoped by a property id, which is checked first.
type ImageService struct {
	repo   ports.PropertyImageRepository
	logger *slog.Logger
}

// NewImageService wraps repo. A nil logger discards output.
func NewImageService(repo ports.PropertyImageRepository, logger *slog.Logger) *ImageService {
	return &ImageService{repo: repo, logger: nopLogger(logger)}
}

func (s *ImageService) GetByProperty(ctx context.Context, propertyID string) domain.Result[[]image.Image] {
	if err := property.ValidateID(propertyID)(); err != nil {
		return reject[[]image.Image](ctx, s.logger, "property_image", "get_by_property", err)
	}
	return s.repo.GetByProperty(ctx, propertyID)
}

func (s *ImageService) Create(ctx context.Context, req image.CreateRequest) domain.Result[*image.Image] {
	if err := req.Validate(); err != nil {
		return reject[*image.Image](ctx, s.logger, "property_image", "create", err)
	}
	return s.repo.Create(ctx, req)
}

func (s *ImageService) CreateBulk(ctx context.Context, propertyID string, images []image.CreateRequest) domain.Result[[]image.Image] {
	if err := image.ValidateBulk(propertyID, images); err != nil {
		return reject[[]image.Image](ctx, s.logger, "property_image", "create_bulk", err)
	}
	return s.repo.CreateBulk(ctx, propertyID, images)
}

func (s *ImageService) Update(ctx context.Context, req image.UpdateRequest) domain.Result[*image.Image] {
	if err := req.Validate(); err != nil {
		return reject[*image.Image](ctx, s.logger, "property_image", "update", err)
	}
	return s.repo.Update(ctx, req)
}

func (s *ImageService) Delete(ctx context.Context, propertyID, id string) domain.Result[domain.Empty] {
	if err := image.ValidateScope(propertyID, id); err != nil {
		return reject[domain.Empty](ctx, s.logger, "property_image", "delete", err)
	}
	return s.repo.Delete(ctx, propertyID, id)
}

func (s *ImageService) ToggleEnabled(ctx context.Context, propertyID, id string, enabled bool) domain.Result[*image.Image] {
	if err := image.ValidateScope(propertyID, id); err != nil {
		return reject[*image.Image](ctx, s.logger, "property_image", "toggle_enabled", err)
	}
	return s.repo.ToggleEnabled(ctx, propertyID, id, enabled)
}
