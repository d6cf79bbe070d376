// Package search implements the token query engine and cursor paging over
// normalized restaurant records. All operations are pure: they never mutate
// or reorder the input set.
package search

import (
	"strings"

	"ozicme/internal/domain/entity"

	"golang.org/x/text/unicode/norm"
)

// Fold canonicalizes text for matching: NFC composition (decomposed Hangul
// from some upstream exports must match composed input) followed by
// lowercasing.
func Fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// Tokenize splits a raw query into folded search tokens. Whitespace-only
// queries yield no tokens.
func Tokenize(query string) []string {
	return strings.Fields(Fold(query))
}

// Filter returns the records whose search text contains every query token as
// a substring (AND semantics, no word-boundary requirement). The relative
// order of the input is preserved; a query with no tokens returns the input
// unchanged.
func Filter(records []entity.Restaurant, query string) []entity.Restaurant {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return records
	}

	filtered := make([]entity.Restaurant, 0, len(records))
	for _, record := range records {
		if matchesAll(record.SearchText, tokens) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func matchesAll(searchText string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(searchText, token) {
			return false
		}
	}

	return true
}
