package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeIconNotFound, "icon %s not found", "lucide:nope")

	if err.Code != ErrCodeIconNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIconNotFound)
	}

	if err.Message != "icon lucide:nope not found" {
		t.Errorf("Message = %v, want %v", err.Message, "icon lucide:nope not found")
	}

	expected := "ICON_NOT_FOUND: icon lucide:nope not found"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeConfigInvalid, cause, "decode relaxicons.config.json")

	if err.Code != ErrCodeConfigInvalid {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConfigInvalid)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestWithStatus(t *testing.T) {
	err := WithStatus(ErrCodeFetchFailed, 503, "fetch collection %s", "lucide")

	expected := "FETCH_FAILED: fetch collection lucide (status 503)"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}

	wrapped := fmt.Errorf("list icons: %w", err)
	if got := StatusOf(wrapped); got != 503 {
		t.Errorf("StatusOf() = %d, want 503", got)
	}
	if got := StatusOf(errors.New("plain")); got != 0 {
		t.Errorf("StatusOf(plain) = %d, want 0", got)
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
			err:      New(ErrCodeParse, "test"),
			code:     ErrCodeParse,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeParse, "test"),
			code:     ErrCodeFetchFailed,
			expected: false,
		},
		{
			name:     "outermost code wins",
			err:      Wrap(ErrCodeFetchFailed, New(ErrCodeParse, "inner"), "outer"),
			code:     ErrCodeFetchFailed,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("add: %w", New(ErrCodeDestinationExists, "exists")),
			code:     ErrCodeDestinationExists,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeCollectionNotFound, "test"),
			expected: ErrCodeCollectionNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "with status",
			err:      WithStatus(ErrCodeFetchFailed, 429, "fetch icon"),
			expected: "fetch icon (status 429)",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	fatal := []Code{ErrCodeConfigMissing, ErrCodeConfigInvalid, ErrCodeIdentifierMalformed}
	for _, code := range fatal {
		if !IsFatal(New(code, "x")) {
			t.Errorf("IsFatal(%s) = false, want true", code)
		}
	}

	perItem := []Code{ErrCodeIconNotFound, ErrCodeDestinationExists, ErrCodeFetchFailed, ErrCodeParse}
	for _, code := range perItem {
		if IsFatal(New(code, "x")) {
			t.Errorf("IsFatal(%s) = true, want false", code)
		}
	}
}
