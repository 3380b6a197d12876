package repository

import "strings"

// Fuzzy search shared by the venue and artist repositories.  A raw
// query is split on commas into trimmed terms; each term becomes a
// case-insensitive %term% pattern matched against a record type's
// searchable text fields.  Matches are unioned in field order (name,
// then state, then city) and deduplicated by record id.  There is no
// ranking beyond that ordering.

// SplitTerms breaks a raw search query on commas into trimmed terms.
// An input with no commas yields a single term.  Empty terms are kept:
// an empty term produces the %% pattern, which matches every record.
// That is the documented legacy behavior and is pinned by tests.
func SplitTerms(raw string) []string {
	parts := strings.Split(raw, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		terms = append(terms, strings.TrimSpace(p))
	}
	return terms
}

// Pattern wraps a term in SQL wildcards for a substring LIKE match.
func Pattern(term string) string {
	return "%" + term + "%"
}

// searchFields lists the columns matched per record type, in union
// order. Name matches come first, then state, then city.
var searchFields = []string{"name", "state", "city"}

// mergeUnique flattens per-field/per-term match batches into one
// result set.  Batch order is preserved and only the first occurrence
// of each id survives, so a record matched by several fields or terms
// appears once, at the position of its earliest match.
func mergeUnique[T any](batches [][]T, id func(T) uint64) []T {
	seen := make(map[uint64]bool)
	out := make([]T, 0)
	for _, batch := range batches {
		for _, m := range batch {
			if !seen[id(m)] {
				seen[id(m)] = true
				out = append(out, m)
			}
		}
	}
	return out
}

// territoryFilter returns the WHERE clause and arguments collecting
// one territory's venues.  The legacy "city" key filters by city
// alone; "city_state" filters by the full pair.
func territoryFilter(groupKey, city, state string) (string, []any) {
	if groupKey == "city_state" {
		return `city = ? AND state = ?`, []any{city, state}
	}
	return `city = ?`, []any{city}
}
