package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortKey(t *testing.T) {
	at := time.Date(2024, 3, 2, 14, 0, 0, 123_456_789, time.UTC)

	key := SortKey(at, "abc123")
	assert.Equal(t, "2024-03-02T14:00:00.123Z,abc123", key)

	iso, id, ok := SplitSortKey(key)
	require.True(t, ok)
	assert.Equal(t, "2024-03-02T14:00:00.123Z", iso)
	assert.Equal(t, "abc123", id)

	assert.Less(t, key, DueUpperBound(at), "Expected a key to sort below the bound at its own instant")
	assert.Greater(t, key, DueUpperBound(at.Add(-time.Millisecond)))
}

func TestSortKey_ConvertsToUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	local := time.Date(2024, 3, 2, 9, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-02T14:00:00.000Z,x", SortKey(local, "x"))
}

func TestSplitSortKey_Invalid(t *testing.T) {
	for _, key := range []string{"", "2024-03-02T14:00:00.000Z", ",abc", "2024-03-02T14:00:00.000Z,"} {
		_, _, ok := SplitSortKey(key)
		assert.False(t, ok, key)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC), "Sat, Mar 2nd 2024 9:00am EST"},
		{time.Date(2024, 3, 11, 21, 30, 0, 0, time.UTC), "Mon, Mar 11th 2024 5:30pm EDT"},
		{time.Date(2024, 8, 1, 4, 5, 0, 0, time.UTC), "Thu, Aug 1st 2024 12:05am EDT"},
		{time.Date(2024, 1, 23, 15, 0, 0, 0, time.UTC), "Tue, Jan 23rd 2024 10:00am EST"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDisplayDate(tt.at, loc))
	}
}
