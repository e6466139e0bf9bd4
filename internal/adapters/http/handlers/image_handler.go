package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/property-manager/internal/domain/image"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// ImageHandler handles the images nested under a property.
type ImageHandler struct {
	images ports.PropertyImageRepository
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images ports.PropertyImageRepository) *ImageHandler {
	return &ImageHandler{images: images}
}

func renderImages(imgs []image.Image) dto.ListResponse[dto.ImageResponse] {
	return dto.ToList(imgs, dto.ToImageResponse)
}

// ListImages handles GET /api/v1/properties/{propertyId}/images.
func (h *ImageHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	res := h.images.GetByProperty(r.Context(), chi.URLParam(r, "propertyId"))
	respond(w, r, res, http.StatusOK, renderImages)
}

// CreateImage handles POST /api/v1/properties/{propertyId}/images.
func (h *ImageHandler) CreateImage(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.images.Create(r.Context(), req.ToDomain(chi.URLParam(r, "propertyId")))
	respond(w, r, res, http.StatusCreated, dto.ToImageResponse)
}

// CreateImagesBulk handles POST /api/v1/properties/{propertyId}/images/bulk.
func (h *ImageHandler) CreateImagesBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkImagesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	propertyID := chi.URLParam(r, "propertyId")
	res := h.images.CreateBulk(r.Context(), propertyID, req.ToDomain(propertyID))
	respond(w, r, res, http.StatusCreated, renderImages)
}

// UpdateImage handles PUT /api/v1/properties/{propertyId}/images/{id}.
func (h *ImageHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.images.Update(r.Context(), req.ToDomain(chi.URLParam(r, "propertyId"), chi.URLParam(r, "id")))
	respond(w, r, res, http.StatusOK, dto.ToImageResponse)
}

// ToggleImage handles PATCH /api/v1/properties/{propertyId}/images/{id}/toggle.
func (h *ImageHandler) ToggleImage(w http.ResponseWriter, r *http.Request) {
	var req dto.ToggleImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.images.ToggleEnabled(r.Context(), chi.URLParam(r, "propertyId"), chi.URLParam(r, "id"), *req.Enabled)
	respond(w, r, res, http.StatusOK, dto.ToImageResponse)
}

// DeleteImage handles DELETE /api/v1/properties/{propertyId}/images/{id}.
func (h *ImageHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	res := h.images.Delete(r.Context(), chi.URLParam(r, "propertyId"), chi.URLParam(r, "id"))
	respondNoContent(w, r, res)
}
