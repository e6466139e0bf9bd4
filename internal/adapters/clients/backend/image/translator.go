package image

import (
	"github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend/transform"
	"github.com/jsamuelsen11/property-manager/internal/domain/image"
)

// ToDomainImage renames backend fields onto a domain Image. A nil DTO yields
// nil.
func ToDomainImage(dto *PropertyImageDTO) *image.Image {
	if dto == nil {
		return nil
	}
	return &image.Image{
		ID:         dto.IDPropertyImage,
		PropertyID: dto.IDProperty,
		File:       dto.File,
		Enabled:    dto.Enabled,
	}
}

// ToDomainImageList adapts a list, dropping null entries.
func ToDomainImageList(dtos []*PropertyImageDTO) []image.Image {
	return transform.MapNonNil(dtos, ToDomainImage)
}

// ToCreateImageDTO maps a create request onto the backend payload.
func ToCreateImageDTO(req *image.CreateRequest) CreatePropertyImageDTO {
	return CreatePropertyImageDTO{
		IDProperty: req.PropertyID,
		File:       req.File,
		Enabled:    transform.Copy(req.Enabled),
	}
}

// ToCreateImageDTOs maps a bulk upload. Every item is attached to
// propertyID regardless of its own PropertyID.
func ToCreateImageDTOs(propertyID string, reqs []image.CreateRequest) []CreatePropertyImageDTO {
	out := make([]CreatePropertyImageDTO, len(reqs))
	for i := range reqs {
		out[i] = ToCreateImageDTO(&reqs[i])
		out[i].IDProperty = propertyID
	}
	return out
}

// ToUpdateImageDTO maps a partial update, keeping both routing IDs.
func ToUpdateImageDTO(req *image.UpdateRequest) UpdatePropertyImageDTO {
	return UpdatePropertyImageDTO{
		ID:         req.ID,
		PropertyID: req.PropertyID,
		File:       transform.NilIfBlank(req.File),
		Enabled:    transform.Copy(req.Enabled),
	}
}
