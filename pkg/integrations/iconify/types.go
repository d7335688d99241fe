package iconify

import (
	"encoding/json"
	"maps"
	"slices"
)

// collectionsResponse is the /collections document, keyed by prefix.
type collectionsResponse map[string]collectionInfo

type collectionInfo struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Total      *int   `json:"total"`
	TotalIcons *int   `json:"totalIcons"`
}

func (i collectionInfo) toCollection(prefix string) Collection {
	title := i.Name
	if title == "" {
		title = i.Title
	}
	if title == "" {
		title = prefix
	}
	count := i.Total
	if count == nil {
		count = i.TotalIcons
	}
	return Collection{Name: prefix, Title: title, Count: count}
}

// collectionResponse is the /collection?prefix= document. Depending on the
// API version the names come as an "icons" map (or list), or as
// "uncategorized" plus "categories".
type collectionResponse struct {
	Prefix        string              `json:"prefix"`
	Icons         json.RawMessage     `json:"icons"`
	Uncategorized []string            `json:"uncategorized"`
	Categories    map[string][]string `json:"categories"`
}

// names returns every icon name once. Map keys are sorted; list and
// category order is kept.
func (r collectionResponse) names() []string {
	if len(r.Icons) > 0 {
		var byName map[string]json.RawMessage
		if err := json.Unmarshal(r.Icons, &byName); err == nil && len(byName) > 0 {
			return slices.Sorted(maps.Keys(byName))
		}
		var list []string
		if err := json.Unmarshal(r.Icons, &list); err == nil && len(list) > 0 {
			return dedupe(list)
		}
	}

	all := slices.Clone(r.Uncategorized)
	for _, cat := range slices.Sorted(maps.Keys(r.Categories)) {
		all = append(all, r.Categories[cat]...)
	}
	return dedupe(all)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
