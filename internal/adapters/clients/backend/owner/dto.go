// Package owner holds the backend wire shapes for owners and their
// translation to and from domain types.
package owner

// OwnerDTO is an owner as the backend returns it.
type OwnerDTO struct {
	IDOwner   string  `json:"idOwner"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Photo     *string `json:"photo,omitempty"`
	Birthday  string  `json:"birthday"`
	CreatedAt *string `json:"createdAt,omitempty"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

// CreateOwnerDTO is the create payload.
type CreateOwnerDTO struct {
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Photo    *string `json:"photo,omitempty"`
	Birthday string  `json:"birthday"`
}

// UpdateOwnerDTO is the partial-update payload. ID also routes the request.
type UpdateOwnerDTO struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Photo    *string `json:"photo,omitempty"`
	Birthday *string `json:"birthday,omitempty"`
}
