package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidShape, "bad shape: %s", "s1")

	if err.Code != ErrCodeInvalidShape {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidShape)
	}

	if err.Message != "bad shape: s1" {
		t.Errorf("Message = %v, want %v", err.Message, "bad shape: s1")
	}

	expected := "INVALID_SHAPE: bad shape: s1"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidDiagram, cause, "parse diagram")

	if err.Code != ErrCodeInvalidDiagram {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDiagram)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "MatchingCode",
			err:  New(ErrCodeShapeNotFound, "no shape"),
			code: ErrCodeShapeNotFound,
			want: true,
		},
		{
			name: "DifferentCode",
			err:  New(ErrCodeShapeNotFound, "no shape"),
			code: ErrCodeConnectorNotFound,
			want: false,
		},
		{
			name: "WrappedError",
			err:  Wrap(ErrCodeInvalidDiagram, errors.New("json"), "parse"),
			code: ErrCodeInvalidDiagram,
			want: true,
		},
		{
			name: "PlainError",
			err:  errors.New("plain"),
			code: ErrCodeInvalidDiagram,
			want: false,
		},
		{
			name: "NilError",
			err:  nil,
			code: ErrCodeInvalidDiagram,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidSettings, "bad")); got != ErrCodeInvalidSettings {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeInvalidSettings)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestErrorFamilies(t *testing.T) {
	malformed := []Code{
		ErrCodeInvalidDiagram, ErrCodeInvalidShape, ErrCodeInvalidConnector,
		ErrCodeInvalidSettings, ErrCodeInvalidKind, ErrCodeInvalidPath,
	}
	for _, code := range malformed {
		err := New(code, "x")
		if !IsMalformed(err) {
			t.Errorf("IsMalformed(%v) = false, want true", code)
		}
		if IsNotFound(err) {
			t.Errorf("IsNotFound(%v) = true, want false", code)
		}
	}

	notFound := []Code{ErrCodeShapeNotFound, ErrCodeConnectorNotFound, ErrCodeFileNotFound}
	for _, code := range notFound {
		err := New(code, "x")
		if !IsNotFound(err) {
			t.Errorf("IsNotFound(%v) = false, want true", code)
		}
		if IsMalformed(err) {
			t.Errorf("IsMalformed(%v) = true, want false", code)
		}
	}

	internal := New(ErrCodeInternal, "x")
	if IsMalformed(internal) || IsNotFound(internal) {
		t.Error("INTERNAL_ERROR belongs to neither family")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidShape, "width must be non-negative")
	if got := UserMessage(err); got != "width must be non-negative" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := errors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
