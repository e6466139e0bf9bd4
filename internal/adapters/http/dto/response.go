// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/details"
	"github.com/jsamuelsen11/property-manager/internal/domain/image"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
)

// PropertyResponse represents a single property in HTTP responses.
type PropertyResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	Price        float64    `json:"price"`
	CodeInternal string     `json:"codeInternal"`
	Year         int        `json:"year"`
	OwnerID      string     `json:"ownerId"`
	OwnerName    *string    `json:"ownerName,omitempty"`
	Image        *string    `json:"image,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// OwnerResponse represents a single owner in HTTP responses.
type OwnerResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Photo     *string    `json:"photo,omitempty"`
	Birthday  string     `json:"birthday"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ImageResponse represents a single property image in HTTP responses.
type ImageResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	File       string `json:"file"`
	Enabled    bool   `json:"enabled"`
}

// TraceResponse represents a single property trace in HTTP responses.
type TraceResponse struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"propertyId"`
	DateSale   string  `json:"dateSale"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Tax        float64 `json:"tax"`
}

// ListResponse wraps a list of items with its length.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// PageResponse is one page of items with the backend's pagination metadata.
type PageResponse[T any] struct {
	Items      []T               `json:"items"`
	Pagination domain.Pagination `json:"pagination"`
}

// DetailsResponse is the property detail view. Sections that could not be
// loaded are empty and listed in Warnings.
type DetailsResponse struct {
	Property PropertyResponse  `json:"property"`
	Owner    *OwnerResponse    `json:"owner"`
	Images   []ImageResponse   `json:"images"`
	Traces   []TraceResponse   `json:"traces"`
	Warnings []WarningResponse `json:"warnings,omitempty"`
	Complete bool              `json:"complete"`
}

// WarningResponse explains a missing details section.
type WarningResponse struct {
	Section string `json:"section"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status string                   `json:"status"`
	Checks map[string]CheckResponse `json:"checks"`
}

// CheckResponse is one dependency's readiness entry. CircuitBreaker is only
// set for downstream APIs behind a breaker.
type CheckResponse struct {
	Status         string `json:"status"`
	Error          string `json:"error,omitempty"`
	CircuitBreaker string `json:"circuitBreaker,omitempty"`
}

// ToPropertyResponse converts a domain Property to an HTTP response DTO.
func ToPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		OwnerID:      p.OwnerID,
		OwnerName:    p.OwnerName,
		Image:        p.Image,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToOwnerResponse converts a domain Owner to an HTTP response DTO.
func ToOwnerResponse(o *owner.Owner) OwnerResponse {
	return OwnerResponse{
		ID:        o.ID,
		Name:      o.Name,
		Address:   o.Address,
		Photo:     o.Photo,
		Birthday:  o.Birthday,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// ToImageResponse converts a domain Image to an HTTP response DTO.
func ToImageResponse(img *image.Image) ImageResponse {
	return ImageResponse{
		ID:         img.ID,
		PropertyID: img.PropertyID,
		File:       img.File,
		Enabled:    img.Enabled,
	}
}

// ToTraceResponse converts a domain Trace to an HTTP response DTO.
func ToTraceResponse(t *trace.Trace) TraceResponse {
	return TraceResponse{
		ID:         t.ID,
		PropertyID: t.PropertyID,
		DateSale:   t.DateSale,
		Name:       t.Name,
		Value:      t.Value,
		Tax:        t.Tax,
	}
}

// ToList converts items with convert and wraps them in a ListResponse. The
// Items slice is never nil so an empty list encodes as [].
func ToList[E, R any](items []E, convert func(*E) R) ListResponse[R] {
	out := convertAll(items, convert)
	return ListResponse[R]{Items: out, Count: len(out)}
}

// ToPage converts a domain page, keeping its metadata unchanged.
func ToPage[E, R any](page domain.Page[E], convert func(*E) R) PageResponse[R] {
	return PageResponse[R]{
		Items:      convertAll(page.Items, convert),
		Pagination: page.Pagination,
	}
}

// ToDetailsResponse converts the composed property view.
func ToDetailsResponse(d *details.PropertyDetails) DetailsResponse {
	resp := DetailsResponse{
		Property: ToPropertyResponse(&d.Property),
		Images:   convertAll(d.Images, ToImageResponse),
		Traces:   convertAll(d.Traces, ToTraceResponse),
		Complete: d.Complete(),
	}
	if d.Owner != nil {
		o := ToOwnerResponse(d.Owner)
		resp.Owner = &o
	}
	for _, w := range d.Warnings {
		wr := WarningResponse{Section: w.Section}
		if w.Error != nil {
			wr.Code = w.Error.Code
			wr.Message = w.Error.Message
		}
		resp.Warnings = append(resp.Warnings, wr)
	}
	return resp
}

func convertAll[E, R any](items []E, convert func(*E) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = convert(&items[i])
	}
	return out
}
