// Package property defines the Property entity, its create/update requests,
// list filters, and the business rules applied before any backend call.
package property

import (
	"time"

	"github.com/jsamuelsen11/property-manager/internal/domain"
)

// Validation codes and messages. Codes and messages are displayed by the
// frontend verbatim and must not change.
const (
	CodeIDRequired      = "PROPERTY_ID_REQUIRED"
	CodeNameRequired    = "PROPERTY_NAME_REQUIRED"
	CodeAddressRequired = "PROPERTY_ADDRESS_REQUIRED"
	CodeInvalidPrice    = "INVALID_PROPERTY_PRICE"
	CodeOwnerIDRequired = "OWNER_ID_REQUIRED"

	MsgIDRequired      = "Property ID is required"
	MsgNameRequired    = "Property name is required"
	MsgAddressRequired = "Property address is required"
	MsgInvalidPrice    = "Property price must be greater than 0"
	MsgOwnerIDRequired = "Owner ID is required"
)

// Property is a real-estate listing managed by the backend. ID is opaque and
// assigned by the backend.
type Property struct {
	ID           string
	Name         string
	Address      string
	Price        float64
	CodeInternal string
	Year         int
	OwnerID      string
	OwnerName    *string
	Image        *string
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}

// CreateRequest carries the fields accepted when creating a property.
// Optional fields are pointers; nil means "not sent".
type CreateRequest struct {
	Name         string
	Address      string
	Price        float64
	CodeInternal *string
	Year         *int
	OwnerID      string
	Image        *string
}

// Validate checks, in order: name, address, price, owner.
func (r *CreateRequest) Validate() *domain.Error {
	return domain.FirstFailure(
		domain.RequiredTrimmed(r.Name, CodeNameRequired, MsgNameRequired),
		domain.RequiredTrimmed(r.Address, CodeAddressRequired, MsgAddressRequired),
		domain.Positive(r.Price, CodeInvalidPrice, MsgInvalidPrice),
		domain.Required(r.OwnerID, CodeOwnerIDRequired, MsgOwnerIDRequired),
	)
}

// UpdateRequest is a partial update. ID routes the request and is always
// required; every other nil field is left unchanged by the backend.
type UpdateRequest struct {
	ID           string
	Name         *string
	Address      *string
	Price        *float64
	CodeInternal *string
	Year         *int
	OwnerID      *string
	Image        *string
}

// Validate checks the id, then the price when one is supplied.
func (r *UpdateRequest) Validate() *domain.Error {
	return domain.FirstFailure(
		ValidateID(r.ID),
		domain.IfPresent(r.Price, func(p float64) domain.Check {
			return domain.Positive(p, CodeInvalidPrice, MsgInvalidPrice)
		}),
	)
}

// ValidateID returns the check applied to every id-keyed property operation.
func ValidateID(id string) domain.Check {
	return domain.Required(id, CodeIDRequired, MsgIDRequired)
}
