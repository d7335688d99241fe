package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 10 * time.Second

// DefaultTTL is how long an entry without an ETag is served without asking
// the registry.
const DefaultTTL = 24 * time.Hour

// UserAgent identifies the tool to the registry.
const UserAgent = "relaxicons-cli/1.0"

var (
	// ErrNotFound is returned when the registry answers 404.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures (timeouts, connection errors).
	ErrNetwork = errors.New("network error")
)

// StatusError reports a response that was neither success, 304 nor 404.
type StatusError struct {
	Status int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d %s", e.URL, e.Status, http.StatusText(e.Status))
}

// Retryable reports whether the status is worth retrying (429 and 5xx).
func (e *StatusError) Retryable() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// HostScope returns the cache key scope for a registry base URL
// ("api.iconify.design:"), so registries never share entries.
func HostScope(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL + ":"
	}
	return u.Host + ":"
}

// URLEncode percent-encodes a string for use as a URL path segment.
func URLEncode(s string) string { return url.PathEscape(s) }
