package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking. Every *Error unwraps to exactly
// one of them; the sentinel classifies the failure without changing Code.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrUnknown     = errors.New("unknown error")
)

// CodeUnknown is the last-resort code used when neither the backend nor the
// transport supplied one.
const CodeUnknown = "UNKNOWN_ERROR"

// MsgUnknown is the message paired with CodeUnknown.
const MsgUnknown = "An unknown error occurred"

// Error is the uniform error envelope returned in a Result. Message is meant
// for display, Code is stable and machine-readable, Details carries optional
// structured context (backend field errors, HTTP status, ...).
type Error struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`

	kind error
}

// NewError builds an Error classified under kind. A nil kind is treated as
// ErrUnknown.
func NewError(kind error, code, message string) *Error {
	if kind == nil {
		kind = ErrUnknown
	}
	return &Error{Message: message, Code: code, kind: kind}
}

// NewValidationError builds an Error classified as ErrValidation. It is the
// constructor used by every business rule check.
func NewValidationError(code, message string) *Error {
	return NewError(ErrValidation, code, message)
}

// UnknownError returns the generic UNKNOWN_ERROR envelope.
func UnknownError() *Error {
	return NewError(ErrUnknown, CodeUnknown, MsgUnknown)
}

// WithDetails returns a copy of e carrying the given details.
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the sentinel the error is classified under.
func (e *Error) Unwrap() error {
	if e.kind == nil {
		return ErrUnknown
	}
	return e.kind
}

// Is reports whether two envelopes carry the same code. It lets tests and
// callers compare against a reference envelope with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}
