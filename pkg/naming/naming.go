// Package naming derives the identifiers generated code is named after.
//
// An icon's base name ("arrow-left", "3d-box", "class") becomes a PascalCase
// component name and a kebab-case file and tag name. Both forms are made safe
// for every target language: component names never collide with a reserved
// word and never start with a digit, and kebab names only contain [a-z0-9-].
//
//	names := naming.Derive("arrow-left")
//	names.Pascal      // "ArrowLeft"
//	names.Component() // "ArrowLeftIcon"
//	names.Kebab       // "arrow-left"
package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ReservedPrefix is prepended to names that are unsafe as identifiers.
const ReservedPrefix = "Icon"

// reserved lists words that cannot name a generated component.
var reserved = map[string]bool{
	"default": true, "class": true, "function": true, "return": true,
	"export": true, "import": true, "new": true, "switch": true,
	"case": true, "var": true, "let": true, "const": true,
	"if": true, "else": true, "try": true, "catch": true,
	"finally": true, "extends": true, "super": true,
}

var (
	nonAlnum      = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	lowerUpper    = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymWord   = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	repeatedDash  = regexp.MustCompile(`-{2,}`)
	safeKebabOnly = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// NameSet holds the derived forms of one icon's base name.
type NameSet struct {
	Pascal string // PascalCase, safe as an identifier
	Kebab  string // kebab-case, only [a-z0-9-]
}

// Component returns the generated component identifier.
func (n NameSet) Component() string {
	return n.Pascal + "Icon"
}

// Derive computes the NameSet for an icon base name.
func Derive(base string) NameSet {
	pascal := SafePascal(ToPascal(base))
	return NameSet{
		Pascal: pascal,
		Kebab:  SafeKebab(ToKebab(pascal)),
	}
}

// Fold strips diacritics so "café" splits like "cafe".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ToPascal splits raw on runs of non-alphanumeric characters, uppercases the
// first letter of every segment and joins them. The rest of each segment is
// left untouched, so "arrowLeft" stays "ArrowLeft".
func ToPascal(raw string) string {
	var b strings.Builder
	for _, part := range nonAlnum.Split(Fold(raw), -1) {
		if part == "" {
			continue
		}
		b.WriteString(upperFirst(part))
	}
	return b.String()
}

// ToKebab converts raw to lowercase hyphen-separated form. Boundaries are
// inserted between a lowercase letter or digit and an uppercase letter, and
// between an acronym and a following capitalized word ("XMLParser" becomes
// "xml-parser").
func ToKebab(raw string) string {
	s := Fold(raw)
	s = lowerUpper.ReplaceAllString(s, "$1-$2")
	s = acronymWord.ReplaceAllString(s, "$1-$2")
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.ToLower(s)
	s = repeatedDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SafePascal prefixes name with ReservedPrefix when it is a reserved word
// (compared case-sensitively) or starts with a digit.
func SafePascal(name string) string {
	if name == "" {
		return name
	}
	if first, _ := utf8.DecodeRuneInString(name); reserved[name] || unicode.IsDigit(first) {
		return ReservedPrefix + upperFirst(name)
	}
	return name
}

// SafeKebab forces name into [a-z0-9-]. Uppercase letters are lowercased and
// every other offending character becomes a hyphen.
func SafeKebab(name string) string {
	if name == "" || safeKebabOnly.MatchString(name) {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// IsReserved reports whether name is in the reserved word set.
func IsReserved(name string) bool {
	return reserved[name]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
