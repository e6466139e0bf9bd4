// Package transform holds the small post-processing steps the backend
// translators share: blank-to-absent normalization, absent-key stripping for
// query parameters, and slice mapping that drops malformed entries.
//
// Field renaming itself is ordinary struct assignment in each translator, so
// the compiler checks every mapped field name.
package transform

import (
	"time"

	"github.com/jsamuelsen11/property-manager/internal/domain"
)

// NilIfBlank returns nil for a nil or empty string and a fresh copy
// otherwise. The result never aliases s.
func NilIfBlank(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// Copy returns a shallow copy of an optional value, or nil.
func Copy[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Value dereferences v, returning the zero value for nil.
func Value[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// Compact returns a new map keeping only keys whose value is present. Nil
// interfaces and typed nil pointers of the option types used by filters
// count as absent. The source map is not modified.
func Compact(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if isAbsent(v) {
			continue
		}
		out[k] = v
	}
	return out
}

// Blank returns a new map in which nil, empty-string and blank optional
// values are replaced by nil. Keys are kept. The source map is not modified.
func Blank(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if isAbsent(v) || isEmptyString(v) {
			out[k] = nil
			continue
		}
		out[k] = v
	}
	return out
}

// MapNonNil maps items through fn and drops nil results. Lists are decoded
// as []*DTO so that null entries reach fn as nil and are dropped here.
func MapNonNil[D, E any](items []D, fn func(D) *E) []E {
	out := make([]E, 0, len(items))
	for _, item := range items {
		if e := fn(item); e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// ParseTime parses an optional backend timestamp. RFC 3339 is tried first,
// then the zone-less layout the backend uses for local times. Absent or
// unparsable values yield nil.
func ParseTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatTime renders an optional timestamp as RFC 3339.
func FormatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"}

// PaginatedDTO is the backend's page envelope.
type PaginatedDTO[T any] struct {
	Items           []T  `json:"items"`
	PageNumber      int  `json:"pageNumber"`
	PageSize        int  `json:"pageSize"`
	TotalRecords    int  `json:"totalRecords"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Pagination copies the page metadata as reported.
func (p *PaginatedDTO[T]) Pagination() domain.Pagination {
	return domain.Pagination{
		PageNumber:      p.PageNumber,
		PageSize:        p.PageSize,
		TotalRecords:    p.TotalRecords,
		TotalPages:      p.TotalPages,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
	}
}

func isAbsent(v any) bool {
	switch p := v.(type) {
	case nil:
		return true
	case *string:
		return p == nil
	case *int:
		return p == nil
	case *float64:
		return p == nil
	case *bool:
		return p == nil
	default:
		return false
	}
}

func isEmptyString(v any) bool {
	switch s := v.(type) {
	case string:
		return s == ""
	case *string:
		return s != nil && *s == ""
	default:
		return false
	}
}
