package trace

import (
	"github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend/transform"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
)

// ToDomainTrace renames backend fields onto a domain Trace. A nil DTO yields
// nil.
func ToDomainTrace(dto *PropertyTraceDTO) *trace.Trace {
	if dto == nil {
		return nil
	}
	return &trace.Trace{
		ID:         dto.IDPropertyTrace,
		PropertyID: dto.IDProperty,
		DateSale:   dto.DateSale,
		Name:       dto.Name,
		Value:      dto.Value,
		Tax:        dto.Tax,
	}
}

// ToDomainTraceList adapts a list, dropping null entries.
func ToDomainTraceList(dtos []*PropertyTraceDTO) []trace.Trace {
	return transform.MapNonNil(dtos, ToDomainTrace)
}

// ToCreateTraceDTO maps a create request onto the backend payload.
func ToCreateTraceDTO(req *trace.CreateRequest) CreatePropertyTraceDTO {
	return CreatePropertyTraceDTO{
		IDProperty: req.PropertyID,
		DateSale:   req.DateSale,
		Name:       req.Name,
		Value:      req.Value,
		Tax:        req.Tax,
	}
}

// ToUpdateTraceDTO maps a partial update, keeping both routing IDs. A zero
// tax is a real value and is sent.
func ToUpdateTraceDTO(req *trace.UpdateRequest) UpdatePropertyTraceDTO {
	return UpdatePropertyTraceDTO{
		ID:         req.ID,
		PropertyID: req.PropertyID,
		DateSale:   transform.NilIfBlank(req.DateSale),
		Name:       transform.NilIfBlank(req.Name),
		Value:      transform.Copy(req.Value),
		Tax:        transform.Copy(req.Tax),
	}
}
