package owner

import (
	"github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend/transform"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
)

// ToDomainOwner renames backend fields onto a domain Owner. A nil DTO
// yields nil.
func ToDomainOwner(dto *OwnerDTO) *owner.Owner {
	if dto == nil {
		return nil
	}
	return &owner.Owner{
		ID:        dto.IDOwner,
		Name:      dto.Name,
		Address:   dto.Address,
		Photo:     transform.NilIfBlank(dto.Photo),
		Birthday:  dto.Birthday,
		CreatedAt: transform.ParseTime(dto.CreatedAt),
		UpdatedAt: transform.ParseTime(dto.UpdatedAt),
	}
}

// ToDomainOwnerList adapts a list, dropping null entries.
func ToDomainOwnerList(dtos []*OwnerDTO) []owner.Owner {
	return transform.MapNonNil(dtos, ToDomainOwner)
}

// ToCreateOwnerDTO maps a create request onto the backend payload.
func ToCreateOwnerDTO(req *owner.CreateRequest) CreateOwnerDTO {
	return CreateOwnerDTO{
		Name:     req.Name,
		Address:  req.Address,
		Photo:    transform.NilIfBlank(req.Photo),
		Birthday: req.Birthday,
	}
}

// ToUpdateOwnerDTO maps a partial update onto the backend payload, keeping
// the routing ID.
func ToUpdateOwnerDTO(req *owner.UpdateRequest) UpdateOwnerDTO {
	return UpdateOwnerDTO{
		ID:       req.ID,
		Name:     transform.NilIfBlank(req.Name),
		Address:  transform.NilIfBlank(req.Address),
		Photo:    transform.NilIfBlank(req.Photo),
		Birthday: transform.NilIfBlank(req.Birthday),
	}
}
