// Package owner defines the Owner entity and the rules applied to owner
// requests before they reach the backend.
package owner

import (
	"time"

	"github.com/jsamuelsen11/property-manager/internal/domain"
)

const (
	CodeIDRequired       = "OWNER_ID_REQUIRED"
	CodeNameRequired     = "OWNER_NAME_REQUIRED"
	CodeAddressRequired  = "OWNER_ADDRESS_REQUIRED"
	CodeBirthdayRequired = "OWNER_BIRTHDAY_REQUIRED"

	MsgIDRequired       = "Owner ID is required"
	MsgNameRequired     = "Owner name is required"
	MsgAddressRequired  = "Owner address is required"
	MsgBirthdayRequired = "Owner birthday is required"
)

// Owner is a person who owns one or more properties. Birthday is kept as the
// date string the backend returns.
type Owner struct {
	ID        string
	Name      string
	Address   string
	Photo     *string
	Birthday  string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// CreateRequest carries the fields accepted when creating an owner.
type CreateRequest struct {
	Name     string
	Address  string
	Photo    *string
	Birthday string
}

// Validate checks name, address and birthday, in that order.
func (r *CreateRequest) Validate() *domain.Error {
	return domain.FirstFailure(
		domain.RequiredTrimmed(r.Name, CodeNameRequired, MsgNameRequired),
		domain.RequiredTrimmed(r.Address, CodeAddressRequired, MsgAddressRequired),
		domain.Required(r.Birthday, CodeBirthdayRequired, MsgBirthdayRequired),
	)
}

// UpdateRequest is a partial update routed by ID.
type UpdateRequest struct {
	ID       string
	Name     *string
	Address  *string
	Photo    *string
	Birthday *string
}

// Validate checks the id only; partial payloads are accepted as sent.
func (r *UpdateRequest) Validate() *domain.Error {
	return ValidateID(r.ID)()
}

// ValidateID returns the check applied to every id-keyed owner operation.
func ValidateID(id string) domain.Check {
	return domain.Required(id, CodeIDRequired, MsgIDRequired)
}
