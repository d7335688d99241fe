package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateIdentifierPart validates one half of an icon identifier (the
// collection prefix or the icon name). Both halves end up in request URLs and
// the name ends up in file paths, so anything that could escape a directory or
// a URL path segment is rejected.
//
// The validation rules are intentionally conservative:
//   - No empty parts
//   - No control characters or null bytes
//   - No path traversal sequences (..) or backslashes
//   - Maximum length of 128 characters
func ValidateIdentifierPart(part string) error {
	if part == "" {
		return New(ErrCodeIdentifierMalformed, "identifier part cannot be empty")
	}

	if len(part) > 128 {
		return New(ErrCodeIdentifierMalformed, "identifier part too long (max 128 characters)")
	}

	for _, r := range part {
		if unicode.IsControl(r) {
			return New(ErrCodeIdentifierMalformed, "identifier contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "\\", "?", "#"} {
		if strings.Contains(part, pattern) {
			return New(ErrCodeIdentifierMalformed, "identifier contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// collectionPrefixRegex matches registry collection prefixes ("lucide",
// "mdi-light", "fa6-solid").
var collectionPrefixRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidateCollectionPrefix validates a collection prefix.
func ValidateCollectionPrefix(prefix string) error {
	if err := ValidateIdentifierPart(prefix); err != nil {
		return err
	}
	if !collectionPrefixRegex.MatchString(prefix) {
		return New(ErrCodeIdentifierMalformed, "invalid collection prefix: %q", prefix)
	}
	return nil
}

// ValidatePath validates a directory path taken from configuration.
// Absolute paths are allowed; the path must not carry control characters.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeConfigInvalid, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeConfigInvalid, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeConfigInvalid, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
