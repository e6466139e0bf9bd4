package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// TraceHandler handles the sale history nested under a property.
type TraceHandler struct {
	traces ports.PropertyTraceRepository
}

// NewTraceHandler creates a new TraceHandler.
func NewTraceHandler(traces ports.PropertyTraceRepository) *TraceHandler {
	return &TraceHandler{traces: traces}
}

// ListTraces handles GET /api/v1/properties/{propertyId}/traces.
func (h *TraceHandler) ListTraces(w http.ResponseWriter, r *http.Request) {
	res := h.traces.GetByProperty(r.Context(), chi.URLParam(r, "propertyId"))
	respond(w, r, res, http.StatusOK, func(ts []trace.Trace) dto.ListResponse[dto.TraceResponse] {
		return dto.ToList(ts, dto.ToTraceResponse)
	})
}

// CreateTrace handles POST /api/v1/properties/{propertyId}/traces.
func (h *TraceHandler) CreateTrace(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTraceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.traces.Create(r.Context(), req.ToDomain(chi.URLParam(r, "propertyId")))
	respond(w, r, res, http.StatusCreated, dto.ToTraceResponse)
}

// UpdateTrace handles PUT /api/v1/properties/{propertyId}/traces/{id}.
func (h *TraceHandler) UpdateTrace(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTraceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.traces.Update(r.Context(), req.ToDomain(chi.URLParam(r, "propertyId"), chi.URLParam(r, "id")))
	respond(w, r, res, http.StatusOK, dto.ToTraceResponse)
}

// DeleteTrace handles DELETE /api/v1/properties/{propertyId}/traces/{id}.
func (h *TraceHandler) DeleteTrace(w http.ResponseWriter, r *http.Request) {
	res := h.traces.Delete(r.Context(), chi.URLParam(r, "propertyId"), chi.URLParam(r, "id"))
	respondNoContent(w, r, res)
}
