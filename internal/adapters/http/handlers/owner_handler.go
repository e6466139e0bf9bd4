package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// OwnerHandler handles owner CRUD.
type OwnerHandler struct {
	owners ports.OwnerRepository
}

// NewOwnerHandler creates a new OwnerHandler.
func NewOwnerHandler(owners ports.OwnerRepository) *OwnerHandler {
	return &OwnerHandler{owners: owners}
}

// ListOwners handles GET /api/v1/owners.
func (h *OwnerHandler) ListOwners(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.owners.GetAll(r.Context()), http.StatusOK,
		func(list []owner.Owner) dto.ListResponse[dto.OwnerResponse] {
			return dto.ToList(list, dto.ToOwnerResponse)
		})
}

// CreateOwner handles POST /api/v1/owners.
func (h *OwnerHandler) CreateOwner(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOwnerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	respond(w, r, h.owners.Create(r.Context(), req.ToDomain()), http.StatusCreated, dto.ToOwnerResponse)
}

// GetOwner handles GET /api/v1/owners/{id}.
func (h *OwnerHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.owners.GetByID(r.Context(), chi.URLParam(r, "id")), http.StatusOK, dto.ToOwnerResponse)
}

// UpdateOwner handles PUT /api/v1/owners/{id}.
func (h *OwnerHandler) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateOwnerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.owners.Update(r.Context(), req.ToDomain(chi.URLParam(r, "id")))
	respond(w, r, res, http.StatusOK, dto.ToOwnerResponse)
}

// DeleteOwner handles DELETE /api/v1/owners/{id}.
func (h *OwnerHandler) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	respondNoContent(w, r, h.owners.Delete(r.Context(), chi.URLParam(r, "id")))
}
