package iconify

import (
	"slices"

	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/icon"
)

// Offline fixture data. Deterministic so tests and demos run without network.
const (
	FixtureCollection = "lucide"
	FixtureTitle      = "Lucide"
	FixtureIcon       = "home"
	FixtureSVG        = `<svg viewBox="0 0 10 10"><path d="M0"/></svg>`
)

var fixtureNames = []string{"home", "star", "bell"}

func fixtureCollections() []Collection {
	count := len(fixtureNames)
	return []Collection{{Name: FixtureCollection, Title: FixtureTitle, Count: &count}}
}

func fixtureIcons(prefix string) ([]string, error) {
	if prefix != FixtureCollection {
		return nil, errors.New(errors.ErrCodeCollectionNotFound, "collection %q not found", prefix)
	}
	return slices.Clone(fixtureNames), nil
}

func fixtureIcon(id icon.ID) (string, error) {
	if id.Collection == FixtureCollection && id.Name == FixtureIcon {
		return FixtureSVG, nil
	}
	return "", errors.New(errors.ErrCodeIconNotFound, "icon %s not found", id)
}
