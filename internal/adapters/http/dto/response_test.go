package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/details"
	"github.com/jsamuelsen11/property-manager/internal/domain/image"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func testProperty() property.Property {
	return property.Property{
		ID:           "1",
		Name:         "Casa Azul",
		Address:      "Calle 1",
		Price:        150000,
		CodeInternal: "CA-01",
		Year:         2020,
		OwnerID:      "3",
		OwnerName:    stringPtr("Ana"),
		CreatedAt:    &testTime,
	}
}

func TestToPropertyResponse_JSON(t *testing.T) {
	t.Parallel()

	p := testProperty()
	data, err := json.Marshal(dto.ToPropertyResponse(&p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"id", "name", "address", "price", "codeInternal", "year", "ownerId", "ownerName", "createdAt"} {
		if _, ok := got[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	for _, key := range []string{"image", "updatedAt"} {
		if _, ok := got[key]; ok {
			t.Errorf("key %q present, want omitted", key)
		}
	}
	if got["createdAt"] != "2026-02-12T15:04:05Z" {
		t.Errorf("createdAt = %v", got["createdAt"])
	}
}

func TestToList_EmptyEncodesAsArray(t *testing.T) {
	t.Parallel()

	resp := dto.ToList([]owner.Owner(nil), dto.ToOwnerResponse)

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"items":[],"count":0}` {
		t.Errorf("json = %s", data)
	}
}

func TestToList(t *testing.T) {
	t.Parallel()

	imgs := []image.Image{
		{ID: "10", PropertyID: "1", File: "https://cdn.example.com/a.jpg", Enabled: true},
		{ID: "11", PropertyID: "1", File: "https://cdn.example.com/b.jpg"},
	}

	resp := dto.ToList(imgs, dto.ToImageResponse)

	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	if resp.Items[1].ID != "11" || resp.Items[1].Enabled {
		t.Errorf("Items[1] = %+v", resp.Items[1])
	}
}

func TestToPage_KeepsPagination(t *testing.T) {
	t.Parallel()

	page := domain.Page[property.Property]{
		Items: []property.Property{testProperty()},
		Pagination: domain.Pagination{
			PageNumber: 2, PageSize: 1, TotalRecords: 3, TotalPages: 3,
			HasNextPage: true, HasPreviousPage: true,
		},
	}

	resp := dto.ToPage(page, dto.ToPropertyResponse)

	if resp.Pagination != page.Pagination {
		t.Errorf("Pagination = %+v, want %+v", resp.Pagination, page.Pagination)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "1" {
		t.Errorf("Items = %+v", resp.Items)
	}
}

func TestToDetailsResponse(t *testing.T) {
	t.Parallel()

	t.Run("complete", func(t *testing.T) {
		t.Parallel()

		d := &details.PropertyDetails{
			Property: testProperty(),
			Owner:    &owner.Owner{ID: "3", Name: "Ana", Birthday: "1990-04-01"},
			Images:   []image.Image{{ID: "10", PropertyID: "1", File: "https://cdn.example.com/a.jpg"}},
			Traces:   []trace.Trace{{ID: "20", PropertyID: "1", Name: "Venta", Value: 1000}},
		}

		resp := dto.ToDetailsResponse(d)

		if !resp.Complete {
			t.Error("Complete = false, want true")
		}
		if resp.Owner == nil || resp.Owner.Name != "Ana" {
			t.Errorf("Owner = %+v", resp.Owner)
		}
		if len(resp.Images) != 1 || len(resp.Traces) != 1 {
			t.Errorf("Images = %d, Traces = %d, want 1 each", len(resp.Images), len(resp.Traces))
		}
		if resp.Warnings != nil {
			t.Errorf("Warnings = %+v, want nil", resp.Warnings)
		}
	})

	t.Run("degraded", func(t *testing.T) {
		t.Parallel()

		d := &details.PropertyDetails{
			Property: testProperty(),
			Warnings: []details.Warning{{
				Section: details.SectionOwner,
				Error:   domain.NewError(domain.ErrUnavailable, "TIMEOUT", "Request timed out"),
			}},
		}

		resp := dto.ToDetailsResponse(d)

		if resp.Complete {
			t.Error("Complete = true, want false")
		}
		if resp.Owner != nil {
			t.Errorf("Owner = %+v, want nil", resp.Owner)
		}
		if resp.Images == nil || resp.Traces == nil {
			t.Error("missing sections should encode as empty arrays")
		}
		want := dto.WarningResponse{Section: "owner", Code: "TIMEOUT", Message: "Request timed out"}
		if len(resp.Warnings) != 1 || resp.Warnings[0] != want {
			t.Errorf("Warnings = %+v, want [%+v]", resp.Warnings, want)
		}
	})
}
