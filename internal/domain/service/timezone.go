package service

import (
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
)

// Normalized holds the storage fragments derived from one delivery instant.
type Normalized struct {
	Instant    time.Time
	ISO        string
	DayBucket  string
	HourPrefix string
}

// Normalizer turns wall-clock times of the canonical timezone into UTC instants
// and the day buckets they are stored under.
type Normalizer struct {
	loc    *time.Location
	policy string
	now    func() time.Time
}

// NewNormalizer builds a Normalizer. policy is domain.OffsetAtTarget or
// domain.OffsetAtEvaluation; anything else behaves like OffsetAtTarget.
func NewNormalizer(loc *time.Location, policy string, now func() time.Time) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Normalizer{loc: loc, policy: policy, now: now}
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Normalize reads the wall-clock fields of wall and resolves them in the canonical
// timezone. With OffsetAtEvaluation the offset in effect now is applied, so a
// schedule across a DST change lands one hour off.
func (n *Normalizer) Normalize(wall time.Time) Normalized {
	y, mo, d := wall.Date()
	h, mi, s := wall.Clock()
	ns := wall.Nanosecond()

	var instant time.Time
	if n.policy == domain.OffsetAtEvaluation {
		_, offset := n.now().In(n.loc).Zone()
		instant = time.Date(y, mo, d, h, mi, s, ns, time.UTC).Add(-time.Duration(offset) * time.Second)
	} else {
		instant = time.Date(y, mo, d, h, mi, s, ns, n.loc).UTC()
	}

	// keys carry millisecond precision
	instant = instant.Truncate(time.Millisecond)

	return Normalized{
		Instant:    instant,
		ISO:        domain.FormatISO(instant),
		DayBucket:  n.Bucket(instant),
		HourPrefix: instant.UTC().Format(domain.HourPrefixLayout),
	}
}

// Bucket is the canonical-timezone day of instant.
func (n *Normalizer) Bucket(instant time.Time) string {
	return instant.In(n.loc).Format(domain.DayLayout)
}

// DueBuckets returns the bucket of now and the lookbackDays buckets before it,
// oldest first.
func (n *Normalizer) DueBuckets(now time.Time, lookbackDays int) []string {
	local := now.In(n.loc)
	buckets := make([]string, 0, lookbackDays+1)
	for i := lookbackDays; i >= 0; i-- {
		buckets = append(buckets, local.AddDate(0, 0, -i).Format(domain.DayLayout))
	}
	return buckets
}
