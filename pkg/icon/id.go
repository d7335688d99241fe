// Package icon defines the identifier that names one icon in the registry.
package icon

import (
	"strings"

	"github.com/relaxicons/relaxicons/pkg/errors"
)

// malformedHint is shown for any identifier that cannot be parsed.
const malformedHint = "Invalid icon identifier. Use collection:name (e.g. lucide:home)"

// ID identifies an icon as a collection prefix plus an icon name.
type ID struct {
	Collection string
	Name       string
}

// String returns the canonical "collection:name" form.
func (id ID) String() string {
	return id.Collection + ":" + id.Name
}

// Parse parses "collection:name" or "collection/name". The colon wins when
// both separators appear. Exactly two non-empty parts are required; anything
// else fails with IDENTIFIER_MALFORMED.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	sep := "/"
	if strings.Contains(s, ":") {
		sep = ":"
	}

	parts := strings.Split(s, sep)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ID{}, errors.New(errors.ErrCodeIdentifierMalformed, "%s: %q", malformedHint, s)
	}

	for _, p := range parts {
		if err := errors.ValidateIdentifierPart(p); err != nil {
			return ID{}, errors.Wrap(errors.ErrCodeIdentifierMalformed, err, "%s: %q", malformedHint, s)
		}
	}

	return ID{Collection: parts[0], Name: parts[1]}, nil
}

// ParseAll parses every identifier, failing on the first malformed one so a
// batch never starts with a bad entry.
func ParseAll(raw []string) ([]ID, error) {
	ids := make([]ID, 0, len(raw))
	for _, s := range raw {
		id, err := Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
