package model

import "strings"

// Genre tags live in a single comma-joined column per record.  These
// two helpers are the only place that serialization happens: the
// repository layer joins on write and splits on read, and everything
// above it works with []string.

// JoinGenres serializes a genre list into the stored column value.
func JoinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

// SplitGenres parses the stored column value back into a genre list.
// An empty column yields an empty (non-nil) slice so JSON encodes it
// as [] rather than null.
func SplitGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
