// Package trace holds the backend wire shapes for property traces and their
// translation to and from domain types.
package trace

// PropertyTraceDTO is a trace as the backend returns it.
type PropertyTraceDTO struct {
	IDPropertyTrace string  `json:"idPropertyTrace"`
	IDProperty      string  `json:"idProperty"`
	DateSale        string  `json:"dateSale"`
	Name            string  `json:"name"`
	Value           float64 `json:"value"`
	Tax             float64 `json:"tax"`
}

// CreatePropertyTraceDTO is the create payload. Tax is always sent, zero
// included.
type CreatePropertyTraceDTO struct {
	IDProperty string  `json:"idProperty"`
	DateSale   string  `json:"dateSale"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Tax        float64 `json:"tax"`
}

// UpdatePropertyTraceDTO is the partial-update payload. ID and PropertyID
// also route the request.
type UpdatePropertyTraceDTO struct {
	ID         string   `json:"id"`
	PropertyID string   `json:"propertyId"`
	DateSale   *string  `json:"dateSale,omitempty"`
	Name       *string  `json:"name,omitempty"`
	Value      *float64 `json:"value,omitempty"`
	Tax        *float64 `json:"tax,omitempty"`
}
