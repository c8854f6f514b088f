package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidShape, "invalid shape: %s", "triangle")

	if err.Code != ErrCodeInvalidShape {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidShape)
	}

	if err.Message != "invalid shape: triangle" {
		t.Errorf("Message = %v, want %v", err.Message, "invalid shape: triangle")
	}

	expected := "INVALID_SHAPE: invalid shape: triangle"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "encode image")

	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
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
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeUnknownComponent, "test"),
			code:     ErrCodeUnknownComponent,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeUnknownComponent, "test"),
			code:     ErrCodeUnknownAttachmentPoint,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeInvalidColor, errors.New("parse"), "bad color"),
			code:     ErrCodeInvalidColor,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeDuplicateAttachmentPoint, "dup")); got != ErrCodeDuplicateAttachmentPoint {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeDuplicateAttachmentPoint)
	}

	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidColor, "invalid color value: %q", "blurple")
	if got := UserMessage(err); got != `invalid color value: "blurple"` {
		t.Errorf("UserMessage() = %v", got)
	}

	plain := errors.New("plain message")
	if got := UserMessage(plain); got != "plain message" {
		t.Errorf("UserMessage(plain) = %v", got)
	}
}
