package backend

import (
	"context"
	"log/slog"
	"net/http"

	imagedto "github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend/image"
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/image"
	"github.com/jsamuelsen11/property-manager/internal/platform/telemetry"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// Compile-time interface check.
var _ ports.PropertyImageRepository = (*ImageRepository)(nil)

// ImageRepository is the outbound adapter for /properties/{id}/images.
type ImageRepository struct {
	base
}

// NewImageRepository creates an ImageRepository.
func NewImageRepository(req *Requester, metrics *telemetry.Metrics, logger *slog.Logger) *ImageRepository {
	return &ImageRepository{base{req: req, metrics: metrics, logger: logger, entity: entityImage}}
}

// GetByProperty lists the images of one property.
func (r *ImageRepository) GetByProperty(ctx context.Context, propertyID string) domain.Result[[]image.Image] {
	return guard(ctx, &r.base, "get_by_property", func() domain.Result[[]image.Image] {
		return many(ctx, &r.base, http.MethodGet, endpoint("properties", propertyID, "images"), nil, nil, imagedto.ToDomainImageList)
	})
}

// Create attaches one image to req.PropertyID.
func (r *ImageRepository) Create(ctx context.Context, req image.CreateRequest) domain.Result[*image.Image] {
	return guard(ctx, &r.base, "create", func() domain.Result[*image.Image] {
		path := endpoint("properties", req.PropertyID, "images")
		return one(ctx, &r.base, http.MethodPost, path, imagedto.ToCreateImageDTO(&req), imagedto.ToDomainImage)
	})
}

// CreateBulk posts every image in one call. Each payload is scoped to
// propertyID regardless of the PropertyID set on the request.
func (r *ImageRepository) CreateBulk(ctx context.Context, propertyID string, images []image.CreateRequest) domain.Result[[]image.Image] {
	return guard(ctx, &r.base, "create_bulk", func() domain.Result[[]image.Image] {
		path := endpoint("properties", propertyID, "images", "bulk")
		return many(ctx, &r.base, http.MethodPost, path, nil, imagedto.ToCreateImageDTOs(propertyID, images), imagedto.ToDomainImageList)
	})
}

// Update sends the changed image fields with PUT.
func (r *ImageRepository) Update(ctx context.Context, req image.UpdateRequest) domain.Result[*image.Image] {
	return guard(ctx, &r.base, "update", func() domain.Result[*image.Image] {
		path := endpoint("properties", req.PropertyID, "images", req.ID)
		return one(ctx, &r.base, http.MethodPut, path, imagedto.ToUpdateImageDTO(&req), imagedto.ToDomainImage)
	})
}

// Delete removes one image of a property.
func (r *ImageRepository) Delete(ctx context.Context, propertyID, id string) domain.Result[domain.Empty] {
	return guard(ctx, &r.base, "delete", func() domain.Result[domain.Empty] {
		return none(ctx, &r.base, http.MethodDelete, endpoint("properties", propertyID, "images", id))
	})
}

// ToggleEnabled sends PATCH .../toggle with only the enabled flag.
func (r *ImageRepository) ToggleEnabled(ctx context.Context, propertyID, id string, enabled bool) domain.Result[*image.Image] {
	return guard(ctx, &r.base, "toggle_enabled", func() domain.Result[*image.Image] {
		path := endpoint("properties", propertyID, "images", id, "toggle")
		return one(ctx, &r.base, http.MethodPatch, path, imagedto.ToggleImageDTO{Enabled: enabled}, imagedto.ToDomainImage)
	})
}
