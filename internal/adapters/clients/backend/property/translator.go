package property

import (
	"github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend/transform"
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
)

// ToDomainProperty renames backend fields onto a domain Property. A nil DTO
// yields nil.
func ToDomainProperty(dto *PropertyDTO) *property.Property {
	if dto == nil {
		return nil
	}
	return &property.Property{
		ID:           dto.IDProperty,
		Name:         dto.Name,
		Address:      dto.Address,
		Price:        dto.Price,
		CodeInternal: dto.CodeInternal,
		Year:         dto.Year,
		OwnerID:      dto.IDOwner,
		OwnerName:    transform.NilIfBlank(dto.OwnerName),
		Image:        transform.NilIfBlank(dto.Image),
		CreatedAt:    transform.ParseTime(dto.CreatedAt),
		UpdatedAt:    transform.ParseTime(dto.UpdatedAt),
	}
}

// ToDomainPropertyList adapts a list, dropping null entries.
func ToDomainPropertyList(dtos []*PropertyDTO) []property.Property {
	return transform.MapNonNil(dtos, ToDomainProperty)
}

// ToDomainPropertyPage adapts a page. Pagination is copied unchanged.
func ToDomainPropertyPage(dto *transform.PaginatedDTO[*PropertyDTO]) domain.Page[property.Property] {
	return domain.Page[property.Property]{
		Items:      ToDomainPropertyList(dto.Items),
		Pagination: dto.Pagination(),
	}
}

// ToCreatePropertyDTO maps a create request onto the backend payload.
// Blank optional strings are not sent.
func ToCreatePropertyDTO(req *property.CreateRequest) CreatePropertyDTO {
	return CreatePropertyDTO{
		Name:         req.Name,
		Address:      req.Address,
		Price:        req.Price,
		CodeInternal: transform.NilIfBlank(req.CodeInternal),
		Year:         transform.Copy(req.Year),
		IDOwner:      req.OwnerID,
		Image:        transform.NilIfBlank(req.Image),
	}
}

// ToUpdatePropertyDTO maps a partial update onto the backend payload. Only
// the fields set on req are sent; the routing ID is always carried.
func ToUpdatePropertyDTO(req *property.UpdateRequest) UpdatePropertyDTO {
	return UpdatePropertyDTO{
		ID:           req.ID,
		Name:         transform.NilIfBlank(req.Name),
		Address:      transform.NilIfBlank(req.Address),
		Price:        transform.Copy(req.Price),
		CodeInternal: transform.NilIfBlank(req.CodeInternal),
		Year:         transform.Copy(req.Year),
		IDOwner:      transform.NilIfBlank(req.OwnerID),
		Image:        transform.NilIfBlank(req.Image),
	}
}

// FilterParams turns a filter into query parameters keyed by the filter's
// own field names. Absent criteria are omitted.
func FilterParams(f property.Filter) map[string]any {
	return transform.Compact(transform.Blank(f.Params()))
}
