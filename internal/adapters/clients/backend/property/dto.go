// Package property holds the backend wire shapes for properties and their
// translation to and from domain types.
package property

// PropertyDTO is a property as the backend returns it.
type PropertyDTO struct {
	IDProperty   string  `json:"idProperty"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	CodeInternal string  `json:"codeInternal"`
	Year         int     `json:"year"`
	IDOwner      string  `json:"idOwner"`
	OwnerName    *string `json:"ownerName,omitempty"`
	Image        *string `json:"image,omitempty"`
	CreatedAt    *string `json:"createdAt,omitempty"`
	UpdatedAt    *string `json:"updatedAt,omitempty"`
}

// CreatePropertyDTO is the create payload. The backend expects the owner
// reference as "IdOwner" on writes.
type CreatePropertyDTO struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	CodeInternal *string `json:"codeInternal,omitempty"`
	Year         *int    `json:"year,omitempty"`
	IDOwner      string  `json:"IdOwner"`
	Image        *string `json:"image,omitempty"`
}

// UpdatePropertyDTO is the partial-update payload. ID also routes the
// request.
type UpdatePropertyDTO struct {
	ID           string   `json:"id"`
	Name         *string  `json:"name,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	CodeInternal *string  `json:"codeInternal,omitempty"`
	Year         *int     `json:"year,omitempty"`
	IDOwner      *string  `json:"IdOwner,omitempty"`
	Image        *string  `json:"image,omitempty"`
}
