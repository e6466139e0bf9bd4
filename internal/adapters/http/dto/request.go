package dto

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/image"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
)

// Request DTOs only carry structural checks (lengths, formats, ranges).
// Required fields and value rules are enforced by the services so their
// error codes reach the client unchanged.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of v and converts failures into an
// *InvalidRequestError keyed by "body.<json path>".
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if _, rest, ok := strings.Cut(path, "."); ok {
			path = rest
		}
		fields["body."+path] = fieldMessage(fe)
	}
	return &InvalidRequestError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed on the '%s' check", fe.Tag())
	}
}

// CreatePropertyRequest represents the JSON body for creating a property.
type CreatePropertyRequest struct {
	Name         string  `json:"name" validate:"max=200"`
	Address      string  `json:"address" validate:"max=300"`
	Price        float64 `json:"price"`
	CodeInternal *string `json:"codeInternal,omitempty" validate:"omitempty,max=50"`
	Year         *int    `json:"year,omitempty" validate:"omitempty,min=1800,max=2100"`
	OwnerID      string  `json:"ownerId" validate:"max=64"`
	Image        *string `json:"image,omitempty" validate:"omitempty,url"`
}

// Validate runs the structural checks.
func (r *CreatePropertyRequest) Validate() error { return validateStruct(r) }

// ToDomain maps the request onto a property.CreateRequest.
func (r *CreatePropertyRequest) ToDomain() property.CreateRequest {
	return property.CreateRequest{
		Name:         r.Name,
		Address:      r.Address,
		Price:        r.Price,
		CodeInternal: r.CodeInternal,
		Year:         r.Year,
		OwnerID:      r.OwnerID,
		Image:        r.Image,
	}
}

// UpdatePropertyRequest represents the JSON body for updating a property.
// All fields are optional; nil means "do not change this field".
type UpdatePropertyRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Address      *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	Price        *float64 `json:"price,omitempty"`
	CodeInternal *string  `json:"codeInternal,omitempty" validate:"omitempty,max=50"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,min=1800,max=2100"`
	OwnerID      *string  `json:"ownerId,omitempty" validate:"omitempty,max=64"`
	Image        *string  `json:"image,omitempty" validate:"omitempty,url"`
}

// Validate runs the structural checks.
func (r *UpdatePropertyRequest) Validate() error { return validateStruct(r) }

// ToDomain maps the request onto a property.UpdateRequest for id.
func (r *UpdatePropertyRequest) ToDomain(id string) property.UpdateRequest {
	return property.UpdateRequest{
		ID:           id,
		Name:         r.Name,
		Address:      r.Address,
		Price:        r.Price,
		CodeInternal: r.CodeInternal,
		Year:         r.Year,
		OwnerID:      r.OwnerID,
		Image:        r.Image,
	}
}

// CreateOwnerRequest represents the JSON body for creating an owner.
type CreateOwnerRequest struct {
	Name     string  `json:"name" validate:"max=200"`
	Address  string  `json:"address" validate:"max=300"`
	Photo    *string `json:"photo,omitempty" validate:"omitempty,url"`
	Birthday string  `json:"birthday" validate:"max=40"`
}

// Validate runs the structural checks.
func (r *CreateOwnerRequest) Validate() error { return validateStruct(r) }

// ToDomain maps the request onto an owner.CreateRequest.
func (r *CreateOwnerRequest) ToDomain() owner.CreateRequest {
	return owner.CreateRequest{
		Name:     r.Name,
		Address:  r.Address,
		Photo:    r.Photo,
		Birthday: r.Birthday,
	}
}

// UpdateOwnerRequest represents the JSON body for updating an owner.
type UpdateOwnerRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=300"`
	Photo    *string `json:"photo,omitempty" validate:"omitempty,url"`
	Birthday *string `json:"birthday,omitempty" validate:"omitempty,max=40"`
}

// Validate runs the structural checks.
func (r *UpdateOwnerRequest) Validate() error { return validateStruct(r) }

// ToDomain maps the request onto an owner.UpdateRequest for id.
func (r *UpdateOwnerRequest) ToDomain(id string) owner.UpdateRequest {
	return owner.UpdateRequest{
		ID:       id,
		Name:     r.Name,
		Address:  r.Address,
		Photo:    r.Photo,
		Birthday: r.Birthday,
	}
}

// CreateImageRequest represents the JSON body for attaching one image. The
// parent property comes from the path. File may be an absolute URL or a path
// on the backend's upload host, so only its length is checked here; a blank
// file is left to the image service.
type CreateImageRequest struct {
	File    string `json:"file" validate:"max=2048"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// Validate runs the structural checks.
func (r *CreateImageRequest) Validate() error { return validateStruct(r) }

// ToDomain maps the request onto an image.CreateRequest for propertyID.
func (r *CreateImageRequest) ToDomain(propertyID string) image.CreateRequest {
	return image.CreateRequest{
		PropertyID: propertyID,
		File:       r.File,
		Enabled:    r.Enabled,
	}
}

// BulkImagesRequest represents the JSON body for a bulk image upload. An
// empty list is passed through so the service can report it.
type BulkImagesRequest struct {
	Images []CreateImageRequest `json:"images" validate:"max=50,dive"`
}

// Validate runs the structural checks, including every item.
func (r *BulkImagesRequest) Validate() error { return validateStruct(r) }

// ToDomain maps every item onto an image.CreateRequest for propertyID.
func (r *BulkImagesRequest) ToDomain(propertyID string) []image.CreateRequest {
	out := make([]image.CreateRequest, len(r.Images))
	for i := range r.Images {
		out[i] = r.Images[i].ToDomain(propertyID)
	}
	return out
}

// UpdateImageRequest represents the JSON body for updating an image.
type UpdateImageRequest struct {
	File    *string `json:"file,omitempty" validate:"omitempty,max=2048"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// Validate runs the structural checks.
func (r *UpdateImageRequest) Validate() error { return validateStruct(r) }

// ToDomain maps the request onto an image.UpdateRequest.
func (r *UpdateImageRequest) ToDomain(propertyID, id string) image.UpdateRequest {
	return image.UpdateRequest{
		ID:         id,
		PropertyID: propertyID,
		File:       r.File,
		Enabled:    r.Enabled,
	}
}

// ToggleImageRequest represents the JSON body of the toggle endpoint. The
// flag is mandatory: a toggle without a target state is malformed.
type ToggleImageRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// Validate runs the structural checks.
func (r *ToggleImageRequest) Validate() error { return validateStruct(r) }

// CreateTraceRequest represents the JSON body for recording a trace.
type CreateTraceRequest struct {
	DateSale string  `json:"dateSale" validate:"max=40"`
	Name     string  `json:"name" validate:"max=200"`
	Value    float64 `json:"value"`
	Tax      float64 `json:"tax"`
}

// Validate runs the structural checks.
func (r *CreateTraceRequest) Validate() error { return validateStruct(r) }

// ToDomain maps the request onto a trace.CreateRequest for propertyID.
func (r *CreateTraceRequest) ToDomain(propertyID string) trace.CreateRequest {
	return trace.CreateRequest{
		PropertyID: propertyID,
		DateSale:   r.DateSale,
		Name:       r.Name,
		Value:      r.Value,
		Tax:        r.Tax,
	}
}

// UpdateTraceRequest represents the JSON body for updating a trace.
type UpdateTraceRequest struct {
	DateSale *string  `json:"dateSale,omitempty" validate:"omitempty,max=40"`
	Name     *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Value    *float64 `json:"value,omitempty"`
	Tax      *float64 `json:"tax,omitempty"`
}

// Validate runs the structural checks.
func (r *UpdateTraceRequest) Validate() error { return validateStruct(r) }

// ToDomain maps the request onto a trace.UpdateRequest.
func (r *UpdateTraceRequest) ToDomain(propertyID, id string) trace.UpdateRequest {
	return trace.UpdateRequest{
		ID:         id,
		PropertyID: propertyID,
		DateSale:   r.DateSale,
		Name:       r.Name,
		Value:      r.Value,
		Tax:        r.Tax,
	}
}

// ParsePropertyFilter reads the property list filters from query. Absent or
// empty parameters stay nil; malformed numbers are reported per parameter.
func ParsePropertyFilter(query url.Values) (property.Filter, error) {
	fields := make(map[string]string)

	f := property.Filter{
		Name:         queryString(query, "name"),
		Address:      queryString(query, "address"),
		CodeInternal: queryString(query, "codeInternal"),
		OwnerID:      queryString(query, "ownerId"),
		Year:         queryInt(query, "year", fields),
		MinPrice:     queryFloat(query, "minPrice", fields),
		MaxPrice:     queryFloat(query, "maxPrice", fields),
	}

	if len(fields) > 0 {
		return property.Filter{}, &InvalidRequestError{Fields: fields}
	}
	return f, nil
}

// ParsePageRequest reads pageNumber and pageSize from query. Absent values
// stay zero so the backend applies its defaults.
func ParsePageRequest(query url.Values) (domain.PageRequest, error) {
	fields := make(map[string]string)

	var page domain.PageRequest
	if n := queryInt(query, "pageNumber", fields); n != nil {
		if *n < 1 {
			fields["query.pageNumber"] = "must be at least 1"
		}
		page.PageNumber = *n
	}
	if n := queryInt(query, "pageSize", fields); n != nil {
		if *n < 1 {
			fields["query.pageSize"] = "must be at least 1"
		}
		page.PageSize = *n
	}

	if len(fields) > 0 {
		return domain.PageRequest{}, &InvalidRequestError{Fields: fields}
	}
	return page, nil
}

func queryString(query url.Values, key string) *string {
	v := strings.TrimSpace(query.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func queryInt(query url.Values, key string, fields map[string]string) *int {
	raw := queryString(query, key)
	if raw == nil {
		return nil
	}
	n, err := strconv.Atoi(*raw)
	if err != nil {
		fields["query."+key] = "must be a valid integer"
		return nil
	}
	return &n
}

func queryFloat(query url.Values, key string, fields map[string]string) *float64 {
	raw := queryString(query, key)
	if raw == nil {
		return nil
	}
	n, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		fields["query."+key] = "must be a valid number"
		return nil
	}
	return &n
}
