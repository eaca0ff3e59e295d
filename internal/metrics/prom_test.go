package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()

	rec, err := New(reg)
	require.NoError(t, err)

	rec.SweepItem(OutcomeSent)
	rec.SweepItem(OutcomeSent)
	rec.SweepItem(OutcomeLostRace)
	rec.Scheduled("ok")
	rec.ObserveSweep(120 * time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(rec.sweepItems.WithLabelValues(OutcomeSent)))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.sweepItems.WithLabelValues(OutcomeLostRace)))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.scheduled.WithLabelValues("ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.sweepDuration))
}

func TestNew_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := New(reg)
	require.NoError(t, err)
	second, err := New(reg)
	require.NoError(t, err)

	second.SweepItem(OutcomeSendFailed)
	assert.Equal(t, float64(1), testutil.ToFloat64(first.sweepItems.WithLabelValues(OutcomeSendFailed)))
}
