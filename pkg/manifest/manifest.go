// Package manifest reads batches of icon identifiers.
//
// Identifiers reach the tool three ways: a comma list on the command line
// ("lucide:home,star,mdi:bell"), a plain list file passed with --from, and
// the manifest consumed by regenerate. A manifest is a JSON array, a TOML
// document with an icons array, or one identifier per line with "#"
// comments:
//
//	# relaxicons.manifest
//	lucide:home
//	lucide:star, mdi:bell
//
// Every reader returns identifiers as written, de-duplicated in first-seen
// order. Parsing them is left to the caller so malformed entries are
// reported together.
package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"

	"github.com/relaxicons/relaxicons/pkg/errors"
)

// DefaultFile is the manifest regenerate reads when none is given.
const DefaultFile = "relaxicons.manifest"

// ExpandArg splits a comma list. Entries without a collection inherit the
// collection of the entry before them.
//
//	ExpandArg("lucide:home,star,mdi:bell") // lucide:home lucide:star mdi:bell
func ExpandArg(arg string) []string {
	return expand(strings.Split(arg, ","))
}

// ReadList reads identifiers separated by whitespace or commas.
func ReadList(path string) ([]string, error) {
	data, err := read(path)
	if err != nil {
		return nil, err
	}
	return expand(strings.FieldsFunc(string(data), isListSep)), nil
}

// ReadManifest reads a manifest file. Files ending in .toml are decoded as
// TOML; content starting with "[" or "{" as JSON; anything else as lines.
func ReadManifest(path string) ([]string, error) {
	data, err := read(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var doc struct {
			Icons []string `toml:"icons"`
		}
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode manifest %s", path)
		}
		return expand(doc.Icons), nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		ids, err := decodeJSON(trimmed)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode manifest %s", path)
		}
		return expand(ids), nil
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		ids = append(ids, strings.FieldsFunc(line, isListSep)...)
	}
	return expand(ids), nil
}

// decodeJSON accepts ["a:b", ...] or {"icons": ["a:b", ...]}.
func decodeJSON(data []byte) ([]string, error) {
	if data[0] == '[' {
		var ids []string
		err := json.Unmarshal(data, &ids)
		return ids, err
	}
	var doc struct {
		Icons []string `json:"icons"`
	}
	err := json.Unmarshal(data, &doc)
	return doc.Icons, err
}

func read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

func isListSep(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// expand trims entries, applies prefix inheritance and drops duplicates.
func expand(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	prefix := ""
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if c, _, ok := cutID(s); ok {
			prefix = c
		} else if prefix != "" {
			s = prefix + ":" + s
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// cutID splits on ":" or, when there is none, "/".
func cutID(s string) (collection, name string, ok bool) {
	if c, n, found := strings.Cut(s, ":"); found {
		return c, n, true
	}
	return strings.Cut(s, "/")
}
