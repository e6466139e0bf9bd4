// Package backend implements the repository ports against the property
// backend REST API. Wire shapes and their translation live in subpackages
// (backend/property, backend/owner, backend/image, backend/trace); request
// execution and error mapping live here.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for the repositories:
// request creation, query and JSON encoding, execution via
// httpclient.Client, response body cleanup, status validation, error
// translation, and JSON decoding. It never returns a Go error; every
// failure comes back as a *domain.Error.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes method against path relative to the configured base URL.
//
// query is encoded as URL parameters (nil values are skipped). reqBody is
// marshaled to JSON when non-nil. Any 2xx status is a success; the body is
// then decoded into respBody unless respBody is nil.
func (r *Requester) Do(ctx context.Context, method, path string, query map[string]any, reqBody, respBody any) *domain.Error {
	req, err := r.newRequest(ctx, method, path, query, reqBody)
	if err != nil {
		r.logger.ErrorContext(ctx, "building request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return domain.UnknownError()
	}
	return r.execute(req, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// ServiceName returns the downstream name the underlying client reports.
func (r *Requester) ServiceName() string {
	return r.client.Name()
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) newRequest(ctx context.Context, method, path string, query map[string]any, reqBody any) (*http.Request, error) {
	target := r.client.BaseURL() + path
	if q := encodeQuery(query); q != "" {
		target += "?" + q
	}

	if reqBody == nil {
		req, err := http.NewRequestWithContext(ctx, method, target, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
		}
		return req, nil
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) *domain.Error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		terr := httpclient.Classify(err)
		// Do returns both resp and err when the last attempt ended on a
		// retryable status; the body may still carry the backend's error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			r.logUnexpectedStatus(req, resp.StatusCode)
			return TranslateError(resp.StatusCode, readErrorBody(resp), terr)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("code", terr.Code),
			slog.String("error", err.Error()),
		)
		return TranslateError(0, nil, terr)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.logUnexpectedStatus(req, resp.StatusCode)
		return TranslateError(resp.StatusCode, readErrorBody(resp), httpclient.StatusError(resp.StatusCode))
	}

	if respBody == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		r.logger.ErrorContext(ctx, "decoding response failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return TranslateError(resp.StatusCode, nil, httpclient.InvalidResponse(resp.StatusCode, err))
	}
	return nil
}

func (r *Requester) logUnexpectedStatus(req *http.Request, status int) {
	r.logger.ErrorContext(req.Context(), "unexpected status",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", status),
	)
}

// endpoint joins path segments, escaping each one.
func endpoint(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// encodeQuery renders params sorted by key. Nil values and typed nil
// pointers are skipped.
func encodeQuery(params map[string]any) string {
	values := url.Values{}
	for k, v := range params {
		if s, ok := queryValue(v); ok {
			values.Set(k, s)
		}
	}
	return values.Encode()
}

func queryValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case *string:
		if x == nil {
			return "", false
		}
		return *x, true
	case int:
		return strconv.Itoa(x), true
	case *int:
		if x == nil {
			return "", false
		}
		return strconv.Itoa(*x), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case *float64:
		if x == nil {
			return "", false
		}
		return strconv.FormatFloat(*x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case *bool:
		if x == nil {
			return "", false
		}
		return strconv.FormatBool(*x), true
	default:
		return fmt.Sprint(x), true
	}
}
