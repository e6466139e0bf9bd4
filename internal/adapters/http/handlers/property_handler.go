// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// PropertyHandler handles property CRUD, search and the detail view.
type PropertyHandler struct {
	properties ports.PropertyRepository
	details    ports.PropertyDetailsService
}

// NewPropertyHandler creates a new PropertyHandler. properties is normally
// the validating service, not the raw backend repository.
func NewPropertyHandler(properties ports.PropertyRepository, detailsSvc ports.PropertyDetailsService) *PropertyHandler {
	return &PropertyHandler{properties: properties, details: detailsSvc}
}

// ListProperties handles GET /api/v1/properties.
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	filter, err := dto.ParsePropertyFilter(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, h.properties.GetAll(r.Context(), filter), http.StatusOK,
		func(ps []property.Property) dto.ListResponse[dto.PropertyResponse] {
			return dto.ToList(ps, dto.ToPropertyResponse)
		})
}

// SearchProperties handles GET /api/v1/properties/search/paginated.
func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := dto.ParsePropertyFilter(query)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	page, err := dto.ParsePageRequest(query)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, h.properties.GetAllPaginated(r.Context(), filter, page), http.StatusOK,
		func(p domain.Page[property.Property]) dto.PageResponse[dto.PropertyResponse] {
			return dto.ToPage(p, dto.ToPropertyResponse)
		})
}

// CreateProperty handles POST /api/v1/properties.
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	respond(w, r, h.properties.Create(r.Context(), req.ToDomain()), http.StatusCreated, dto.ToPropertyResponse)
}

// GetProperty handles GET /api/v1/properties/{propertyId}.
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	res := h.properties.GetByID(r.Context(), chi.URLParam(r, "propertyId"))
	respond(w, r, res, http.StatusOK, dto.ToPropertyResponse)
}

// GetPropertyDetails handles GET /api/v1/properties/{propertyId}/details.
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	res := h.details.Get(r.Context(), chi.URLParam(r, "propertyId"))
	respond(w, r, res, http.StatusOK, dto.ToDetailsResponse)
}

// UpdateProperty handles PUT /api/v1/properties/{propertyId}.
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.properties.Update(r.Context(), req.ToDomain(chi.URLParam(r, "propertyId")))
	respond(w, r, res, http.StatusOK, dto.ToPropertyResponse)
}

// DeleteProperty handles DELETE /api/v1/properties/{propertyId}.
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	respondNoContent(w, r, h.properties.Delete(r.Context(), chi.URLParam(r, "propertyId")))
}
