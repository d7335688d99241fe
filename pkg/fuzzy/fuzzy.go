// Package fuzzy ranks icon names against a misspelled query.
//
// The score is a bag-of-characters heuristic: it counts how many characters
// of the query occur anywhere in the candidate, ignoring order and case, and
// normalizes by the longer of the two lengths. It is cheap enough to run over
// every icon of every collection when looking for "did you mean" suggestions.
package fuzzy

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Match is a candidate and its score against a query.
type Match struct {
	Name  string
	Score float64
}

// Score returns a similarity in [0, 1]. Equal strings (case-insensitive)
// score 1.
func Score(query, candidate string) float64 {
	a, b := strings.ToLower(query), strings.ToLower(candidate)
	if a == b {
		return 1
	}

	hits := 0
	for _, r := range a {
		if strings.ContainsRune(b, r) {
			hits++
		}
	}
	return float64(hits) / float64(max(utf8.RuneCountInString(a), utf8.RuneCountInString(b)))
}

// Rank scores every candidate and sorts by descending score. Ties keep the
// input order.
func Rank(query string, candidates []string) []Match {
	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		matches[i] = Match{Name: c, Score: Score(query, c)}
	}
	slices.SortStableFunc(matches, func(x, y Match) int {
		return cmp.Compare(y.Score, x.Score)
	})
	return matches
}

// Suggest returns the names of the top limit candidates. A limit of zero or
// less returns every candidate.
func Suggest(query string, candidates []string, limit int) []string {
	ranked := Rank(query, candidates)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	names := make([]string, len(ranked))
	for i, m := range ranked {
		names[i] = m.Name
	}
	return names
}

// Best returns the highest scoring candidate, or false when there are none.
func Best(query string, candidates []string) (Match, bool) {
	ranked := Rank(query, candidates)
	if len(ranked) == 0 {
		return Match{}, false
	}
	return ranked[0], true
}
