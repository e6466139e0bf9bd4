package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/property-manager/internal/domain/image"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validProperty() property.Property {
	return property.Property{
		ID:           "1",
		Name:         "Casa Azul",
		Address:      "Calle 1 #2-3",
		Price:        150000,
		CodeInternal: "CA-01",
		Year:         2020,
		OwnerID:      "3",
		CreatedAt:    &testTime,
		UpdatedAt:    &testTime,
	}
}

func validOwner() owner.Owner {
	return owner.Owner{
		ID:       "3",
		Name:     "Ana Perez",
		Address:  "Carrera 7",
		Birthday: "1990-04-01",
	}
}

func validImage() image.Image {
	return image.Image{ID: "10", PropertyID: "1", File: "https://cdn.example.com/1.jpg", Enabled: true}
}

func validTrace() trace.Trace {
	return trace.Trace{ID: "20", PropertyID: "1", DateSale: "2024-01-15", Name: "Venta", Value: 150000, Tax: 0}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireProblemCode asserts the response is a problem body with code.
func requireProblemCode(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Code != code {
		t.Errorf("code = %q, want %q", resp.Code, code)
	}
}
