package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sony/gobreaker/v2"
)

// Transport error codes. They describe how a request failed when the remote
// side supplied no code of its own.
const (
	CodeClientError     = "HTTP_CLIENT_ERROR"
	CodeServerError     = "HTTP_SERVER_ERROR"
	CodeNetwork         = "NETWORK_ERROR"
	CodeTimeout         = "TIMEOUT"
	CodeCircuitOpen     = "CIRCUIT_OPEN"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInvalidResponse = "INVALID_RESPONSE"
	CodeUnknown         = "UNKNOWN_ERROR"
)

// errRateLimited marks failures of the local rate limiter.
var errRateLimited = errors.New("rate limit wait failed")

// Error is a classified transport failure. StatusCode is zero when no HTTP
// response was received.
type Error struct {
	Code       string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusError classifies a non-success HTTP status.
func StatusError(status int) *Error {
	code := CodeUnknown
	switch {
	case status == http.StatusTooManyRequests:
		code = CodeRateLimited
	case status >= http.StatusInternalServerError:
		code = CodeServerError
	case status >= http.StatusBadRequest:
		code = CodeClientError
	}
	return &Error{
		Code:       code,
		StatusCode: status,
		Message:    fmt.Sprintf("Request failed with status code %d", status),
	}
}

// InvalidResponse reports a response body that could not be decoded.
func InvalidResponse(status int, err error) *Error {
	return &Error{
		Code:       CodeInvalidResponse,
		StatusCode: status,
		Message:    "Invalid response from server",
		Err:        err,
	}
}

// Classify converts an error returned by Do into an *Error. Errors that are
// already classified are returned as-is.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var herr *Error
	if errors.As(err, &herr) {
		return herr
	}

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return &Error{Code: CodeCircuitOpen, Message: "Service temporarily unavailable", Err: err}
	case errors.Is(err, errRateLimited):
		return &Error{Code: CodeRateLimited, Message: "Too many requests", Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Code: CodeTimeout, Message: "Request timed out", Err: err}
	case errors.Is(err, context.Canceled):
		return &Error{Code: CodeNetwork, Message: "Request canceled", Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &Error{Code: CodeTimeout, Message: "Request timed out", Err: err}
		}
		return &Error{Code: CodeNetwork, Message: "Network error", Err: err}
	}

	return &Error{Code: CodeUnknown, Message: err.Error(), Err: err}
}
