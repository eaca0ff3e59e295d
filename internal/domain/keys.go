package domain

import (
	"strings"
	"time"
)

// FormatISO renders an instant the way it is embedded in sort keys.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// SortKey builds "<ISO instant>,<id>". The id suffix keeps keys unique when two
// messages share the same instant.
func SortKey(deliverAt time.Time, id string) string {
	return FormatISO(deliverAt) + SortKeySeparator + id
}

// DueUpperBound is the inclusive sort key bound of every message due at or before asOf.
func DueUpperBound(asOf time.Time) string {
	return FormatISO(asOf) + SortKeySeparator + SortKeyUpperSentinel
}

// SplitSortKey returns the ISO instant and id embedded in a sort key.
func SplitSortKey(sortKey string) (iso, id string, ok bool) {
	iso, id, ok = strings.Cut(sortKey, SortKeySeparator)
	if !ok || iso == "" || id == "" {
		return "", "", false
	}
	return iso, id, true
}
