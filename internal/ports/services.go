package ports

import (
	"context"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/details"
)

// PropertyDetailsService composes the property detail view. Entity CRUD is
// served directly through the repository ports.
type PropertyDetailsService interface {
	// Get loads the property and then its owner, images and traces. Only a
	// failure to load the property itself fails the Result; the other
	// sections degrade to warnings.
	Get(ctx context.Context, id string) domain.Result[*details.PropertyDetails]
}
