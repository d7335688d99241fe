package errors

import (
	"strings"
	"testing"
)

func TestValidateIdentifierPart(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "home", false},
		{"valid with dash", "arrow-left", false},
		{"valid with digits", "fa6-solid", false},
		{"valid mixed case", "HomeOutline", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"path traversal", "..", true},
		{"embedded traversal", "a..b", true},
		{"backslash", "foo\\bar", true},
		{"query", "home?x=1", true},
		{"fragment", "home#x", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifierPart(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifierPart(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeIdentifierMalformed) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeIdentifierMalformed)
			}
		})
	}
}

func TestValidateCollectionPrefix(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"lucide", false},
		{"mdi-light", false},
		{"fa6-solid", false},
		{"Lucide", true},
		{"-lead", true},
		{"has space", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateCollectionPrefix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCollectionPrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "src/icons", false},
		{"dot relative", "./src/icons", false},
		{"absolute", "/srv/app/icons", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"control char", "src/\x01icons", true},
		{"too long", strings.Repeat("a/", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://api.iconify.design", false},
		{"http://127.0.0.1:8080", false},
		{"ftp://example.com", true},
		{"api.iconify.design", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeConfigMissing,
		ErrCodeConfigInvalid,
		ErrCodeInvalidInput,
		ErrCodeIdentifierMalformed,
		ErrCodeCollectionNotFound,
		ErrCodeIconNotFound,
		ErrCodeFetchFailed,
		ErrCodeUnexpectedPayload,
		ErrCodeParse,
		ErrCodeDestinationExists,
		ErrCodeTemplateInvalid,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
