package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain/service"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Sweeper runs one delivery pass.
type Sweeper interface {
	Sweep(ctx context.Context) service.SweepReport
}

type Options struct {
	Spec     string
	Timeout  time.Duration
	Location *time.Location
	Logger   zerolog.Logger
}

// Scheduler ticks the delivery sweep. Ticks that would overlap a running sweep in
// this process are skipped, overlap across processes is settled by the store.
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	timeout time.Duration
	log     zerolog.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func New(sweeper Sweeper, opts Options) (*Scheduler, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	s := &Scheduler{
		sweeper: sweeper,
		timeout: opts.Timeout,
		log:     opts.Logger,
		ctx:     context.Background(),
	}

	logger := cronLogger{log: opts.Logger}
	s.cron = cron.New(
		cron.WithLocation(opts.Location),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := s.cron.AddFunc(opts.Spec, s.tick); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", opts.Spec, err)
	}

	return s, nil
}

// Start begins ticking. Canceling ctx aborts a sweep in flight.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.cron.Start()
	s.log.Info().Msg("sweep scheduler started")
}

// Stop stops ticking and waits for a running sweep until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()

	select {
	case <-done:
		s.log.Info().Msg("sweep scheduler stopped")
	case <-ctx.Done():
		s.mu.Lock()
		if s.cancel != nil {
			s.cancel()
		}
		s.mu.Unlock()
		return fmt.Errorf("failed waiting for running sweep: %w", ctx.Err())
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	return nil
}

func (s *Scheduler) tick() {
	s.mu.Lock()
	parent := s.ctx
	s.mu.Unlock()

	s.RunOnce(parent)
}

// RunOnce runs a single sweep bounded by the configured timeout.
func (s *Scheduler) RunOnce(ctx context.Context) service.SweepReport {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	report := s.sweeper.Sweep(ctx)

	event := s.log.Info()
	if report.HasErrors() || report.SendFailed > 0 || report.DeleteFailed > 0 {
		event = s.log.Warn()
	}
	event.
		Int("buckets", report.Buckets).
		Int("examined", report.Examined).
		Int("sent", report.Sent).
		Int("deferred", report.Deferred).
		Int("aborted", report.Aborted).
		Int("lost_race", report.LostRace).
		Int("send_failed", report.SendFailed).
		Int("delete_failed", report.DeleteFailed).
		Int("errors", report.Errors).
		Msg("sweep finished")

	return report
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
