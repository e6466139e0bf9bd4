package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/jsamuelsen11/property-manager/internal/domain"
)

// CodeInvalidRequest is reported when a request body or query fails the
// structural checks run before any service is called.
const CodeInvalidRequest = "INVALID_REQUEST"

// ErrorResponse represents an RFC 9457 Problem Details response. Code is an
// extension member carrying the stable error code of the failed operation.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// InvalidRequestError reports malformed input keyed by field location
// ("body.price", "query.pageSize"). It is classified as a validation error.
type InvalidRequestError struct {
	Fields map[string]string
}

func (e *InvalidRequestError) Error() string {
	keys := sortedKeys(e.Fields)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + e.Fields[k]
	}
	return fmt.Sprintf("invalid request: %s", strings.Join(parts, "; "))
}

func (e *InvalidRequestError) Unwrap() error {
	return domain.ErrValidation
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from an error. A
// *domain.Error contributes its code and display message; any other error
// uses its text.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var derr *domain.Error
	var ierr *InvalidRequestError
	switch {
	case errors.As(err, &derr):
		resp.Code = derr.Code
		resp.Detail = derr.Message
	case errors.As(err, &ierr):
		resp.Code = CodeInvalidRequest
		resp.Detail = "Request validation failed"
		resp.Errors = fieldsToDetails(ierr.Fields)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given error.
// It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func fieldsToDetails(fields map[string]string) []ErrorDetail {
	keys := sortedKeys(fields)
	details := make([]ErrorDetail, len(keys))
	for i, k := range keys {
		details[i] = ErrorDetail{Location: k, Message: fields[k]}
	}
	return details
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
