package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	calls   atomic.Int32
	block   chan struct{}
	report  service.SweepReport
	lastCtx context.Context
}

func (f *fakeSweeper) Sweep(ctx context.Context) service.SweepReport {
	f.calls.Add(1)
	f.lastCtx = ctx
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
		}
	}
	return f.report
}

func TestNew_InvalidSpec(t *testing.T) {
	_, err := New(&fakeSweeper{}, Options{Spec: "every now and then", Logger: zerolog.Nop()})
	assert.Error(t, err)
}

func TestScheduler_RunOnce(t *testing.T) {
	var buf bytes.Buffer
	sweeper := &fakeSweeper{report: service.SweepReport{Buckets: 2, Examined: 3, Sent: 1, Errors: 1}}

	s, err := New(sweeper, Options{
		Spec:    "@every 1m",
		Timeout: time.Second,
		Logger:  zerolog.New(&buf),
	})
	require.NoError(t, err)

	report := s.RunOnce(context.Background())

	assert.Equal(t, sweeper.report, report)
	assert.EqualValues(t, 1, sweeper.calls.Load())

	deadline, ok := sweeper.lastCtx.Deadline()
	require.True(t, ok, "Expected the sweep to run under a deadline")
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"sent":1`)
}

func TestScheduler_Ticks(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a real tick")
	}

	sweeper := &fakeSweeper{}
	s, err := New(sweeper, Options{Spec: "@every 1s", Logger: zerolog.Nop()})
	require.NoError(t, err)

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestScheduler_StopCancelsRunningSweep(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a real tick")
	}

	sweeper := &fakeSweeper{block: make(chan struct{})}
	s, err := New(sweeper, Options{Spec: "@every 1s", Logger: zerolog.Nop()})
	require.NoError(t, err)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return sweeper.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = s.Stop(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
