package domain

import "strings"

// Check is a single precondition: it returns nil when satisfied.
type Check func() *Error

// FirstFailure runs checks in order and returns the first failure, or nil
// when all pass. Later checks are not evaluated once one fails.
func FirstFailure(checks ...Check) *Error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// Required fails with code/message when s is empty. Whitespace counts as
// content; use RequiredTrimmed for fields that must not be blank.
func Required(s, code, message string) Check {
	return func() *Error {
		if s == "" {
			return NewValidationError(code, message)
		}
		return nil
	}
}

// RequiredTrimmed fails when s is empty after trimming whitespace.
func RequiredTrimmed(s, code, message string) Check {
	return func() *Error {
		if strings.TrimSpace(s) == "" {
			return NewValidationError(code, message)
		}
		return nil
	}
}

// Positive fails unless v > 0.
func Positive(v float64, code, message string) Check {
	return func() *Error {
		if !(v > 0) {
			return NewValidationError(code, message)
		}
		return nil
	}
}

// NonNegative fails unless v >= 0.
func NonNegative(v float64, code, message string) Check {
	return func() *Error {
		if !(v >= 0) {
			return NewValidationError(code, message)
		}
		return nil
	}
}

// IfPresent applies build to *v only when v is non-nil.
func IfPresent[T any](v *T, build func(T) Check) Check {
	return func() *Error {
		if v == nil {
			return nil
		}
		return build(*v)()
	}
}
