// Package trace defines property traces: the sale and valuation history
// recorded against a property.
package trace

import (
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
)

const (
	CodeIDRequired       = "PROPERTY_TRACE_ID_REQUIRED"
	CodeNameRequired     = "TRACE_NAME_REQUIRED"
	CodeDateSaleRequired = "SALE_DATE_REQUIRED"
	CodeInvalidValue     = "INVALID_TRACE_VALUE"
	CodeInvalidTax       = "INVALID_TAX_VALUE"

	MsgIDRequired       = "Property trace ID is required"
	MsgNameRequired     = "Trace name is required"
	MsgDateSaleRequired = "Sale date is required"
	MsgInvalidValue     = "Trace value must be greater than 0"
	MsgInvalidTax       = "Tax value must be greater than or equal to 0"
)

// Trace is one sale or valuation record. Value must be strictly positive;
// Tax may be zero.
type Trace struct {
	ID         string
	PropertyID string
	DateSale   string
	Name       string
	Value      float64
	Tax        float64
}

// CreateRequest records a new trace against PropertyID.
type CreateRequest struct {
	PropertyID string
	DateSale   string
	Name       string
	Value      float64
	Tax        float64
}

// Validate checks, in order: property, name, sale date, value, tax.
func (r *CreateRequest) Validate() *domain.Error {
	return domain.FirstFailure(
		property.ValidateID(r.PropertyID),
		domain.RequiredTrimmed(r.Name, CodeNameRequired, MsgNameRequired),
		domain.RequiredTrimmed(r.DateSale, CodeDateSaleRequired, MsgDateSaleRequired),
		domain.Positive(r.Value, CodeInvalidValue, MsgInvalidValue),
		domain.NonNegative(r.Tax, CodeInvalidTax, MsgInvalidTax),
	)
}

// UpdateRequest is a partial update scoped by both PropertyID and ID.
type UpdateRequest struct {
	ID         string
	PropertyID string
	DateSale   *string
	Name       *string
	Value      *float64
	Tax        *float64
}

// Validate checks the scope, then value and tax when supplied.
func (r *UpdateRequest) Validate() *domain.Error {
	return domain.FirstFailure(
		func() *domain.Error { return ValidateScope(r.PropertyID, r.ID) },
		domain.IfPresent(r.Value, func(v float64) domain.Check {
			return domain.Positive(v, CodeInvalidValue, MsgInvalidValue)
		}),
		domain.IfPresent(r.Tax, func(v float64) domain.Check {
			return domain.NonNegative(v, CodeInvalidTax, MsgInvalidTax)
		}),
	)
}

// ValidateScope checks the (propertyID, traceID) pair used by update and
// delete.
func ValidateScope(propertyID, id string) *domain.Error {
	return domain.FirstFailure(
		property.ValidateID(propertyID),
		domain.Required(id, CodeIDRequired, MsgIDRequired),
	)
}
