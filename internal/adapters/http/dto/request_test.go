package dto_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/property-manager/internal/domain"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }
func boolPtr(b bool) *bool       { return &b }

// requireInvalidField asserts err is an *InvalidRequestError classified as a
// validation error and containing the expected field location.
func requireInvalidField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("err = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var ierr *dto.InvalidRequestError
	if !errors.As(err, &ierr) {
		t.Fatalf("errors.As(err, *InvalidRequestError) = false, got %T", err)
	}
	if _, ok := ierr.Fields[field]; !ok {
		t.Errorf("Fields missing key %q, got %v", field, ierr.Fields)
	}
}

func TestCreatePropertyRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreatePropertyRequest
		wantField string
	}{
		{
			name: "valid request passes",
			req: dto.CreatePropertyRequest{
				Name: "Casa Azul", Address: "Calle 1", Price: 150000, OwnerID: "3",
				Year: intPtr(2020), Image: stringPtr("https://cdn.example.com/p/1.jpg"),
			},
		},
		{
			name: "blank business fields are left to the service",
			req:  dto.CreatePropertyRequest{},
		},
		{
			name:      "name too long",
			req:       dto.CreatePropertyRequest{Name: strings.Repeat("a", 201)},
			wantField: "body.name",
		},
		{
			name:      "year out of range",
			req:       dto.CreatePropertyRequest{Year: intPtr(1500)},
			wantField: "body.year",
		},
		{
			name:      "image not a URL",
			req:       dto.CreatePropertyRequest{Image: stringPtr("not a url")},
			wantField: "body.image",
		},
		{
			name:      "codeInternal too long",
			req:       dto.CreatePropertyRequest{CodeInternal: stringPtr(strings.Repeat("x", 51))},
			wantField: "body.codeInternal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireInvalidField(t, err, tt.wantField)
		})
	}
}

func TestUpdatePropertyRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.UpdatePropertyRequest{}).Validate(); err != nil {
		t.Errorf("empty update: Validate() = %v, want nil", err)
	}

	err := (&dto.UpdatePropertyRequest{Year: intPtr(2200)}).Validate()
	requireInvalidField(t, err, "body.year")
}

func TestUpdatePropertyRequest_ToDomain(t *testing.T) {
	t.Parallel()

	price := 99.5
	req := dto.UpdatePropertyRequest{Price: &price, Name: stringPtr("Loft")}

	got := req.ToDomain("12")

	if got.ID != "12" {
		t.Errorf("ID = %q, want 12", got.ID)
	}
	if got.Price == nil || *got.Price != 99.5 {
		t.Errorf("Price = %v, want 99.5", got.Price)
	}
	if got.Address != nil {
		t.Errorf("Address = %v, want nil", got.Address)
	}
}

func TestOwnerRequests_Validate(t *testing.T) {
	t.Parallel()

	ok := dto.CreateOwnerRequest{Name: "Ana", Address: "Calle 2", Birthday: "1990-04-01", Photo: stringPtr("https://cdn.example.com/o.png")}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad := dto.CreateOwnerRequest{Photo: stringPtr("::::")}
	requireInvalidField(t, bad.Validate(), "body.photo")

	upd := dto.UpdateOwnerRequest{Address: stringPtr(strings.Repeat("b", 301))}
	requireInvalidField(t, upd.Validate(), "body.address")
}

func TestBulkImagesRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("empty list passes through", func(t *testing.T) {
		t.Parallel()
		if err := (&dto.BulkImagesRequest{}).Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("item error reports its index", func(t *testing.T) {
		t.Parallel()
		req := dto.BulkImagesRequest{Images: []dto.CreateImageRequest{
			{File: "https://cdn.example.com/a.jpg"},
			{File: "https://cdn.example.com/" + strings.Repeat("x", 2048)},
		}}
		requireInvalidField(t, req.Validate(), "body.images[1].file")
	})

	t.Run("blank and relative files pass through", func(t *testing.T) {
		t.Parallel()
		req := dto.BulkImagesRequest{Images: []dto.CreateImageRequest{
			{File: "/uploads/a.png"},
			{File: " "},
		}}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}

func TestCreateImageRequest_LeavesFileRulesToService(t *testing.T) {
	t.Parallel()

	for _, file := range []string{"", "   ", "/uploads/a.png", "https://cdn.example.com/a.jpg"} {
		req := dto.CreateImageRequest{File: file}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", file, err)
		}
	}
}

func TestBulkImagesRequest_ToDomain(t *testing.T) {
	t.Parallel()

	req := dto.BulkImagesRequest{Images: []dto.CreateImageRequest{
		{File: "https://cdn.example.com/a.jpg", Enabled: boolPtr(false)},
		{File: "https://cdn.example.com/b.jpg"},
	}}

	got := req.ToDomain("4")

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for i, img := range got {
		if img.PropertyID != "4" {
			t.Errorf("[%d] PropertyID = %q, want 4", i, img.PropertyID)
		}
	}
	if got[0].Enabled == nil || *got[0].Enabled {
		t.Errorf("[0] Enabled = %v, want false", got[0].Enabled)
	}
	if got[1].Enabled != nil {
		t.Errorf("[1] Enabled = %v, want nil", got[1].Enabled)
	}
}

func TestToggleImageRequest_Validate(t *testing.T) {
	t.Parallel()

	requireInvalidField(t, (&dto.ToggleImageRequest{}).Validate(), "body.enabled")

	if err := (&dto.ToggleImageRequest{Enabled: boolPtr(false)}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestTraceRequests(t *testing.T) {
	t.Parallel()

	create := dto.CreateTraceRequest{DateSale: "2024-01-15", Name: "Venta", Value: 1000, Tax: 0}
	if err := create.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	got := create.ToDomain("8")
	if got.PropertyID != "8" || got.Tax != 0 || got.Value != 1000 {
		t.Errorf("ToDomain() = %+v", got)
	}

	upd := dto.UpdateTraceRequest{Name: stringPtr(strings.Repeat("n", 201))}
	requireInvalidField(t, upd.Validate(), "body.name")
}

func TestParsePropertyFilter(t *testing.T) {
	t.Parallel()

	t.Run("parses every criterion", func(t *testing.T) {
		t.Parallel()

		q := url.Values{
			"name":     {"casa"},
			"ownerId":  {"3"},
			"year":     {"2020"},
			"minPrice": {"100.5"},
			"maxPrice": {" "},
		}
		f, err := dto.ParsePropertyFilter(q)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if f.Name == nil || *f.Name != "casa" {
			t.Errorf("Name = %v", f.Name)
		}
		if f.OwnerID == nil || *f.OwnerID != "3" {
			t.Errorf("OwnerID = %v", f.OwnerID)
		}
		if f.Year == nil || *f.Year != 2020 {
			t.Errorf("Year = %v", f.Year)
		}
		if f.MinPrice == nil || *f.MinPrice != 100.5 {
			t.Errorf("MinPrice = %v", f.MinPrice)
		}
		if f.MaxPrice != nil {
			t.Errorf("MaxPrice = %v, want nil for blank value", *f.MaxPrice)
		}
		if f.Address != nil || f.CodeInternal != nil {
			t.Error("absent criteria should stay nil")
		}
	})

	t.Run("malformed numbers", func(t *testing.T) {
		t.Parallel()

		_, err := dto.ParsePropertyFilter(url.Values{"year": {"soon"}, "minPrice": {"cheap"}})
		requireInvalidField(t, err, "query.year")
		requireInvalidField(t, err, "query.minPrice")
	})
}

func TestParsePageRequest(t *testing.T) {
	t.Parallel()

	page, err := dto.ParsePageRequest(url.Values{"pageNumber": {"2"}, "pageSize": {"25"}})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if page.PageNumber != 2 || page.PageSize != 25 {
		t.Errorf("page = %+v, want {2 25}", page)
	}

	page, err = dto.ParsePageRequest(url.Values{})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if page != (domain.PageRequest{}) {
		t.Errorf("page = %+v, want zero", page)
	}

	_, err = dto.ParsePageRequest(url.Values{"pageSize": {"0"}})
	requireInvalidField(t, err, "query.pageSize")

	_, err = dto.ParsePageRequest(url.Values{"pageNumber": {"x"}})
	requireInvalidField(t, err, "query.pageNumber")
}
