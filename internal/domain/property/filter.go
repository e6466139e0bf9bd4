package property

// Filter holds optional criteria for listing properties. Nil fields are not
// sent. Field names map one-to-one onto backend query parameter names.
type Filter struct {
	Name         *string
	Address      *string
	CodeInternal *string
	OwnerID      *string
	Year         *int
	MinPrice     *float64
	MaxPrice     *float64
}

// Params returns the filter keyed by query parameter name. Absent criteria
// are present as nil values; callers compact them before encoding.
func (f Filter) Params() map[string]any {
	return map[string]any{
		"name":         f.Name,
		"address":      f.Address,
		"codeInternal": f.CodeInternal,
		"ownerId":      f.OwnerID,
		"year":         f.Year,
		"minPrice":     f.MinPrice,
		"maxPrice":     f.MaxPrice,
	}
}
