package database

import "strings"

// EmptySearchPolicy decides what an empty search term matches. The upstream
// endpoints disagree on this, so it is a deployment knob rather than a fixed
// behavior.
type EmptySearchPolicy int

const (
	// EmptySearchMatchAll treats an empty term as "match everything".
	EmptySearchMatchAll EmptySearchPolicy = iota
	// EmptySearchMatchNone treats an empty term as "match nothing".
	EmptySearchMatchNone
)

// ParseEmptySearchPolicy maps the EMPTY_SEARCH_POLICY config value to a
// policy, defaulting to match-all.
func ParseEmptySearchPolicy(s string) EmptySearchPolicy {
	if strings.EqualFold(strings.TrimSpace(s), "match-none") {
		return EmptySearchMatchNone
	}
	return EmptySearchMatchAll
}

// likePattern builds the case-insensitive substring pattern used with
// "lower(col) LIKE ?", which behaves the same on postgres and sqlite.
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
