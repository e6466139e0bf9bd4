package domain

import (
	"errors"
	"testing"
)

func TestOK(t *testing.T) {
	t.Parallel()

	res := OK(42)

	if !res.IsOK() {
		t.Fatal("OK(42).IsOK() = false, want true")
	}
	if res.Err() != nil {
		t.Errorf("Err() = %v, want nil", res.Err())
	}
	v, ok := res.Data()
	if !ok || v != 42 {
		t.Errorf("Data() = (%d, %v), want (42, true)", v, ok)
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	verr := NewValidationError("INVALID_NAME", "Name is required")
	res := Fail[string](verr)

	if res.IsOK() {
		t.Fatal("Fail().IsOK() = true, want false")
	}
	if res.Err() != verr {
		t.Errorf("Err() = %v, want %v", res.Err(), verr)
	}
	v, ok := res.Data()
	if ok || v != "" {
		t.Errorf("Data() = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestFail_NilBecomesUnknown(t *testing.T) {
	t.Parallel()

	res := Fail[int](nil)

	if res.IsOK() {
		t.Fatal("Fail(nil).IsOK() = true, want false")
	}
	if res.Err().Code != CodeUnknown {
		t.Errorf("Err().Code = %q, want %q", res.Err().Code, CodeUnknown)
	}
	if !errors.Is(res.Err(), ErrUnknown) {
		t.Error("Fail(nil) error does not unwrap to ErrUnknown")
	}
}

func TestResult_Unwrap(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		v, err := OK("casa").Unwrap()
		if err != nil || v != "casa" {
			t.Errorf("Unwrap() = (%q, %v), want (\"casa\", nil)", v, err)
		}
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		nf := NewError(ErrNotFound, "HTTP_CLIENT_ERROR", "Property not found")
		v, err := Fail[*int](nf).Unwrap()
		if v != nil {
			t.Errorf("value = %v, want nil", v)
		}
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
		var derr *Error
		if !errors.As(err, &derr) || derr.Code != "HTTP_CLIENT_ERROR" {
			t.Errorf("errors.As did not recover the envelope: %v", err)
		}
	})
}

func TestOK_EmptyPayload(t *testing.T) {
	t.Parallel()

	res := OK(Empty{})
	if !res.IsOK() {
		t.Error("OK(Empty{}).IsOK() = false, want true")
	}
}
