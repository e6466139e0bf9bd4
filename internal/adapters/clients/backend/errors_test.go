package backend

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/platform/httpclient"
)

func TestTranslateError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "404 maps to ErrNotFound", statusCode: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "400 maps to ErrValidation", statusCode: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{name: "422 maps to ErrValidation", statusCode: http.StatusUnprocessableEntity, wantErr: domain.ErrValidation},
		{name: "409 maps to ErrConflict", statusCode: http.StatusConflict, wantErr: domain.ErrConflict},
		{name: "401 maps to ErrForbidden", statusCode: http.StatusUnauthorized, wantErr: domain.ErrForbidden},
		{name: "403 maps to ErrForbidden", statusCode: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{name: "429 maps to ErrUnavailable", statusCode: http.StatusTooManyRequests, wantErr: domain.ErrUnavailable},
		{name: "500 maps to ErrUnavailable", statusCode: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "503 maps to ErrUnavailable", statusCode: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
		{name: "418 maps to ErrUnknown", statusCode: http.StatusTeapot, wantErr: domain.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateError(tt.statusCode, nil, httpclient.StatusError(tt.statusCode))

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateError() = %v, want errors.Is %v", got, tt.wantErr)
			}
		})
	}
}

func TestTranslateError_NotFoundKeepsTransportCode(t *testing.T) {
	t.Parallel()

	got := TranslateError(http.StatusNotFound, nil, httpclient.StatusError(http.StatusNotFound))

	if got.Code != httpclient.CodeClientError {
		t.Errorf("Code = %q, want %q", got.Code, httpclient.CodeClientError)
	}
	if got.Message != "Request failed with status code 404" {
		t.Errorf("Message = %q", got.Message)
	}
}

func TestTranslateError_Precedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		terr        *httpclient.Error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "backend code and message win",
			body:        `{"message":"Owner not found","code":"OWNER_NOT_FOUND"}`,
			terr:        httpclient.StatusError(http.StatusNotFound),
			wantCode:    "OWNER_NOT_FOUND",
			wantMessage: "Owner not found",
		},
		{
			name:        "field errors are flattened in field order",
			body:        `{"title":"One or more validation errors occurred.","errors":{"Price":["Price must be positive"],"Name":["Name is required","Name is too short"]}}`,
			terr:        httpclient.StatusError(http.StatusBadRequest),
			wantCode:    httpclient.CodeClientError,
			wantMessage: "Name is required, Name is too short, Price must be positive",
		},
		{
			name:        "single string field error",
			body:        `{"errors":{"File":"File is required"}}`,
			terr:        httpclient.StatusError(http.StatusBadRequest),
			wantCode:    httpclient.CodeClientError,
			wantMessage: "File is required",
		},
		{
			name:        "title used when no message",
			body:        `{"title":"Bad Request"}`,
			terr:        httpclient.StatusError(http.StatusBadRequest),
			wantCode:    httpclient.CodeClientError,
			wantMessage: "Bad Request",
		},
		{
			name:        "non-JSON body falls back to transport",
			body:        "<html>oops</html>",
			terr:        httpclient.StatusError(http.StatusInternalServerError),
			wantCode:    httpclient.CodeServerError,
			wantMessage: "Request failed with status code 500",
		},
		{
			name:        "nothing known falls back to unknown",
			body:        "",
			terr:        nil,
			wantCode:    domain.CodeUnknown,
			wantMessage: domain.MsgUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status := 0
			if tt.terr != nil {
				status = tt.terr.StatusCode
			}
			got := TranslateError(status, []byte(tt.body), tt.terr)

			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestTranslateError_Details(t *testing.T) {
	t.Parallel()

	got := TranslateError(http.StatusBadRequest, []byte(`{"errors":{"Name":["Name is required"]}}`), httpclient.StatusError(http.StatusBadRequest))

	details, ok := got.Details.(ErrorDetails)
	if !ok {
		t.Fatalf("Details = %T, want ErrorDetails", got.Details)
	}
	if details.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", details.Status)
	}
	if len(details.Fields["Name"]) != 1 {
		t.Errorf("Fields = %v, want Name entry", details.Fields)
	}
}

func TestTranslateError_TransportOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "network", code: httpclient.CodeNetwork, wantErr: domain.ErrUnavailable},
		{name: "timeout", code: httpclient.CodeTimeout, wantErr: domain.ErrUnavailable},
		{name: "circuit open", code: httpclient.CodeCircuitOpen, wantErr: domain.ErrUnavailable},
		{name: "rate limited", code: httpclient.CodeRateLimited, wantErr: domain.ErrUnavailable},
		{name: "invalid response", code: httpclient.CodeInvalidResponse, wantErr: domain.ErrUnavailable},
		{name: "unknown", code: httpclient.CodeUnknown, wantErr: domain.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateError(0, nil, &httpclient.Error{Code: tt.code, Message: "boom"})

			if got.Code != tt.code {
				t.Errorf("Code = %q, want %q", got.Code, tt.code)
			}
			if !errors.Is(got, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false", got, tt.wantErr)
			}
			if got.Details != nil {
				t.Errorf("Details = %v, want nil without a response", got.Details)
			}
		})
	}
}
