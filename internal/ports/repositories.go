package ports

import (
	"context"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/image"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
)

// PropertyRepository is the operation set for properties. The backend adapter
// and the validating service both implement it, so callers hold either one
// through the same type. Methods never panic and never return a Go error:
// every outcome is carried in the Result.
type PropertyRepository interface {
	// GetAll lists properties matching filter. A zero Filter lists all.
	GetAll(ctx context.Context, filter property.Filter) domain.Result[[]property.Property]

	// GetAllPaginated lists one page of matching properties. Pagination
	// metadata comes from the backend unchanged.
	GetAllPaginated(ctx context.Context, filter property.Filter, page domain.PageRequest) domain.Result[domain.Page[property.Property]]

	GetByID(ctx context.Context, id string) domain.Result[*property.Property]
	Create(ctx context.Context, req property.CreateRequest) domain.Result[*property.Property]

	// Update sends only the fields set on req; req.ID selects the property.
	Update(ctx context.Context, req property.UpdateRequest) domain.Result[*property.Property]

	Delete(ctx context.Context, id string) domain.Result[domain.Empty]
}

// OwnerRepository is the operation set for owners.
type OwnerRepository interface {
	GetAll(ctx context.Context) domain.Result[[]owner.Owner]
	GetByID(ctx context.Context, id string) domain.Result[*owner.Owner]
	Create(ctx context.Context, req owner.CreateRequest) domain.Result[*owner.Owner]
	Update(ctx context.Context, req owner.UpdateRequest) domain.Result[*owner.Owner]
	Delete(ctx context.Context, id string) domain.Result[domain.Empty]
}

// PropertyImageRepository is the operation set for property images. Every
// child operation is scoped by the parent property ID as well as the image ID.
type PropertyImageRepository interface {
	GetByProperty(ctx context.Context, propertyID string) domain.Result[[]image.Image]
	Create(ctx context.Context, req image.CreateRequest) domain.Result[*image.Image]

	// CreateBulk uploads several images to propertyID in one call.
	CreateBulk(ctx context.Context, propertyID string, images []image.CreateRequest) domain.Result[[]image.Image]

	Update(ctx context.Context, req image.UpdateRequest) domain.Result[*image.Image]
	Delete(ctx context.Context, propertyID, id string) domain.Result[domain.Empty]

	// ToggleEnabled sends a partial update carrying only the enabled flag.
	ToggleEnabled(ctx context.Context, propertyID, id string, enabled bool) domain.Result[*image.Image]
}

// PropertyTraceRepository is the operation set for property traces, scoped
// like images.
type PropertyTraceRepository interface {
	GetByProperty(ctx context.Context, propertyID string) domain.Result[[]trace.Trace]
	Create(ctx context.Context, req trace.CreateRequest) domain.Result[*trace.Trace]
	Update(ctx context.Context, req trace.UpdateRequest) domain.Result[*trace.Trace]
	Delete(ctx context.Context, propertyID, id string) domain.Result[domain.Empty]
}
