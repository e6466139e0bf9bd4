package backend

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/platform/httpclient"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody is the error payload the backend sends with 4xx/5xx responses.
// Errors maps field names to one or more messages.
type errorBody struct {
	Message string                     `json:"message"`
	Code    string                     `json:"code"`
	Title   string                     `json:"title"`
	Errors  map[string]json.RawMessage `json:"errors"`
}

// ErrorDetails is attached to every translated error. Status is zero when no
// HTTP response was received.
type ErrorDetails struct {
	Status int                 `json:"status,omitempty"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// TranslateError maps a failed call to the uniform error envelope.
//
// The message prefers the backend's field errors (flattened), then its
// message or title, then the transport's message. The code prefers the
// backend's code, then the transport's code, then UNKNOWN_ERROR. The
// sentinel classification follows the HTTP status, or the transport code
// when no response was received.
func TranslateError(status int, body []byte, terr *httpclient.Error) *domain.Error {
	eb := parseErrorBody(body)
	fields := eb.fields()

	message := firstNonEmpty(flatten(fields), eb.Message, eb.Title)
	code := eb.Code
	if terr != nil {
		message = firstNonEmpty(message, terr.Message)
		code = firstNonEmpty(code, terr.Code)
	}
	message = firstNonEmpty(message, domain.MsgUnknown)
	code = firstNonEmpty(code, domain.CodeUnknown)

	derr := domain.NewError(classify(status, terr), code, message)
	if status != 0 || len(fields) > 0 {
		derr = derr.WithDetails(ErrorDetails{Status: status, Fields: fields})
	}
	return derr
}

func classify(status int, terr *httpclient.Error) error {
	switch {
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case status == http.StatusConflict:
		return domain.ErrConflict
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.ErrForbidden
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	}

	if terr != nil {
		switch terr.Code {
		case httpclient.CodeNetwork, httpclient.CodeTimeout, httpclient.CodeCircuitOpen,
			httpclient.CodeRateLimited, httpclient.CodeInvalidResponse:
			return domain.ErrUnavailable
		}
	}
	return domain.ErrUnknown
}

// readErrorBody reads at most maxErrorBodySize bytes. Read failures yield nil.
func readErrorBody(resp *http.Response) []byte {
	if resp.Body == nil {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return nil
	}
	return body
}

// parseErrorBody returns an empty errorBody when body is not JSON.
func parseErrorBody(body []byte) errorBody {
	var eb errorBody
	if len(body) == 0 {
		return eb
	}
	if err := json.Unmarshal(body, &eb); err != nil {
		return errorBody{}
	}
	return eb
}

// fields decodes each entry of Errors as a list of messages or a single
// message. Entries that are neither are dropped.
func (eb errorBody) fields() map[string][]string {
	if len(eb.Errors) == 0 {
		return nil
	}
	out := make(map[string][]string, len(eb.Errors))
	for field, raw := range eb.Errors {
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			if len(list) > 0 {
				out[field] = list
			}
			continue
		}
		var single string
		if err := json.Unmarshal(raw, &single); err == nil && single != "" {
			out[field] = []string{single}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// flatten joins every field message into one string, fields in sorted order.
func flatten(fields map[string][]string) string {
	if len(fields) == 0 {
		return ""
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var msgs []string
	for _, name := range names {
		for _, m := range fields[name] {
			if m = strings.TrimSpace(m); m != "" {
				msgs = append(msgs, m)
			}
		}
	}
	return strings.Join(msgs, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// emptyEntity reports a success response whose body held no entity.
func emptyEntity() *domain.Error {
	return TranslateError(0, nil, httpclient.InvalidResponse(http.StatusOK, errNullEntity))
}

var errNullEntity = errors.New("response body holds no entity")
