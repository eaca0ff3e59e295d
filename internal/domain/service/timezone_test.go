package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	loc := newYork(t)
	// Saturday before the 2024 spring-forward
	beforeDST := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		policy     string
		wall       time.Time
		wantISO    string
		wantBucket string
		wantHour   string
	}{
		{
			name:       "Should resolve in the zone at the target instant",
			policy:     domain.OffsetAtTarget,
			wall:       time.Date(2024, 3, 2, 9, 0, 0, 0, loc),
			wantISO:    "2024-03-02T14:00:00.000Z",
			wantBucket: "2024-03-02",
			wantHour:   "2024-03-02T14:",
		},
		{
			name:       "Should apply the target offset across DST",
			policy:     domain.OffsetAtTarget,
			wall:       time.Date(2024, 3, 11, 9, 0, 0, 0, loc),
			wantISO:    "2024-03-11T13:00:00.000Z",
			wantBucket: "2024-03-11",
			wantHour:   "2024-03-11T13:",
		},
		{
			name:       "Should apply the evaluation offset across DST",
			policy:     domain.OffsetAtEvaluation,
			wall:       time.Date(2024, 3, 11, 9, 0, 0, 0, loc),
			wantISO:    "2024-03-11T14:00:00.000Z",
			wantBucket: "2024-03-11",
			wantHour:   "2024-03-11T14:",
		},
		{
			name:       "Should agree with the target policy without a DST change",
			policy:     domain.OffsetAtEvaluation,
			wall:       time.Date(2024, 3, 2, 9, 0, 0, 0, loc),
			wantISO:    "2024-03-02T14:00:00.000Z",
			wantBucket: "2024-03-02",
			wantHour:   "2024-03-02T14:",
		},
		{
			name:       "Should bucket late evening by the local day",
			policy:     domain.OffsetAtTarget,
			wall:       time.Date(2024, 3, 2, 21, 30, 0, 0, loc),
			wantISO:    "2024-03-03T02:30:00.000Z",
			wantBucket: "2024-03-02",
			wantHour:   "2024-03-03T02:",
		},
		{
			name:       "Should read only the wall clock of the parsed time",
			policy:     domain.OffsetAtTarget,
			wall:       time.Date(2024, 3, 2, 9, 0, 0, 987_654_321, time.UTC),
			wantISO:    "2024-03-02T14:00:00.987Z",
			wantBucket: "2024-03-02",
			wantHour:   "2024-03-02T14:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer(loc, tt.policy, fixedClock(beforeDST))

			got := n.Normalize(tt.wall)
			again := n.Normalize(tt.wall)

			assert.Equal(t, got, again, "Expected normalization to be deterministic")
			assert.Equal(t, tt.wantISO, got.ISO)
			assert.Equal(t, tt.wantBucket, got.DayBucket)
			assert.Equal(t, tt.wantHour, got.HourPrefix)
			assert.Equal(t, got.ISO, domain.FormatISO(got.Instant))
			assert.Equal(t, got.DayBucket, n.Bucket(got.Instant), "Expected bucket to derive from the instant")
		})
	}
}

func TestNormalizer_DueBuckets(t *testing.T) {
	loc := newYork(t)
	n := NewNormalizer(loc, domain.OffsetAtTarget, nil)

	// 01:00 UTC on the 3rd is still the 2nd in New York
	now := time.Date(2024, 3, 3, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, []string{"2024-03-02"}, n.DueBuckets(now, 0))
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, n.DueBuckets(now, 1))
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}, n.DueBuckets(now, 3))
}
