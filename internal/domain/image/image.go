// Package image defines property images: files attached to a property that
// can be enabled or hidden individually.
package image

import (
	"strings"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
)

const (
	CodeIDRequired   = "PROPERTY_IMAGE_ID_REQUIRED"
	CodeFileRequired = "IMAGE_FILE_REQUIRED"
	CodeImagesEmpty  = "IMAGES_REQUIRED"
	CodeInvalidFile  = "INVALID_IMAGE_FILE"

	MsgIDRequired   = "Property image ID is required"
	MsgFileRequired = "Image file is required"
	MsgImagesEmpty  = "At least one image is required"
	MsgInvalidFile  = "All images must have a valid file"
)

// Image is a picture belonging to exactly one property. File is a URL.
type Image struct {
	ID         string
	PropertyID string
	File       string
	Enabled    bool
}

// CreateRequest attaches a new image to PropertyID. A nil Enabled lets the
// backend apply its default.
type CreateRequest struct {
	PropertyID string
	File       string
	Enabled    *bool
}

// Validate checks the parent property, then the file.
func (r *CreateRequest) Validate() *domain.Error {
	return domain.FirstFailure(
		property.ValidateID(r.PropertyID),
		domain.RequiredTrimmed(r.File, CodeFileRequired, MsgFileRequired),
	)
}

// UpdateRequest is a partial update scoped by both PropertyID and ID.
type UpdateRequest struct {
	ID         string
	PropertyID string
	File       *string
	Enabled    *bool
}

// Validate checks the parent property, then the image id.
func (r *UpdateRequest) Validate() *domain.Error {
	return ValidateScope(r.PropertyID, r.ID)
}

// ValidateScope checks the (propertyID, imageID) pair used by update,
// delete and toggle.
func ValidateScope(propertyID, id string) *domain.Error {
	return domain.FirstFailure(
		property.ValidateID(propertyID),
		domain.Required(id, CodeIDRequired, MsgIDRequired),
	)
}

// ValidateBulk checks a bulk upload: parent property, a non-empty list, and a
// non-blank file on every item. The per-item PropertyID is ignored; the
// propertyID argument scopes the whole batch.
func ValidateBulk(propertyID string, images []CreateRequest) *domain.Error {
	return domain.FirstFailure(
		property.ValidateID(propertyID),
		func() *domain.Error {
			if len(images) == 0 {
				return domain.NewValidationError(CodeImagesEmpty, MsgImagesEmpty)
			}
			return nil
		},
		func() *domain.Error {
			for i := range images {
				if strings.TrimSpace(images[i].File) == "" {
					return domain.NewValidationError(CodeInvalidFile, MsgInvalidFile)
				}
			}
			return nil
		},
	)
}
