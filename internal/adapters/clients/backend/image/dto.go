// Package image holds the backend wire shapes for property images and their
// translation to and from domain types.
package image

// PropertyImageDTO is an image as the backend returns it.
type PropertyImageDTO struct {
	IDPropertyImage string `json:"idPropertyImage"`
	IDProperty      string `json:"idProperty"`
	File            string `json:"file"`
	Enabled         bool   `json:"enabled"`
}

// CreatePropertyImageDTO is the create payload, also used per item in bulk
// uploads.
type CreatePropertyImageDTO struct {
	IDProperty string `json:"idProperty"`
	File       string `json:"file"`
	Enabled    *bool  `json:"enabled,omitempty"`
}

// UpdatePropertyImageDTO is the partial-update payload. ID and PropertyID
// also route the request.
type UpdatePropertyImageDTO struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"propertyId"`
	File       *string `json:"file,omitempty"`
	Enabled    *bool   `json:"enabled,omitempty"`
}

// ToggleImageDTO is the body of the enable/disable call.
type ToggleImageDTO struct {
	Enabled bool `json:"enabled"`
}
