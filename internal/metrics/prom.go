package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sweep item outcomes.
const (
	OutcomeSent              = "sent"
	OutcomeNotPending        = "not_pending"
	OutcomeNotDue            = "not_due"
	OutcomeCredentialMissing = "credential_missing"
	OutcomeCredentialError   = "credential_error"
	OutcomeAborted           = "aborted"
	OutcomeLostRace          = "lost_race"
	OutcomeTransitionError   = "transition_error"
	OutcomeSendFailed        = "send_failed"
	OutcomeDeleteFailed      = "delete_failed"
	OutcomeBucketQueryFailed = "bucket_query_failed"
)

// Recorder holds the sweep and scheduling metrics.
type Recorder struct {
	sweepItems    *prometheus.CounterVec
	sweepDuration prometheus.Histogram
	scheduled     *prometheus.CounterVec
}

// New registers the metrics on reg. A nil registerer defaults to the global one.
func New(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	sweepItems := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sendlater_sweep_items_total",
		Help: "Scheduled messages examined by delivery sweeps, by outcome",
	}, []string{"outcome"})
	sweepDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sendlater_sweep_duration_seconds",
		Help:    "Wall time of a delivery sweep",
		Buckets: prometheus.DefBuckets,
	})
	scheduled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sendlater_schedule_requests_total",
		Help: "Schedule requests, by result",
	}, []string{"result"})

	var err error
	if sweepItems, err = register(reg, sweepItems); err != nil {
		return nil, err
	}
	if sweepDuration, err = register(reg, sweepDuration); err != nil {
		return nil, err
	}
	if scheduled, err = register(reg, scheduled); err != nil {
		return nil, err
	}

	return &Recorder{sweepItems: sweepItems, sweepDuration: sweepDuration, scheduled: scheduled}, nil
}

// register returns the already registered collector when c was registered before.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (r *Recorder) SweepItem(outcome string) {
	r.sweepItems.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveSweep(d time.Duration) {
	r.sweepDuration.Observe(d.Seconds())
}

func (r *Recorder) Scheduled(result string) {
	r.scheduled.WithLabelValues(result).Inc()
}

// Nop discards everything.
type Nop struct{}

func (Nop) SweepItem(string)           {}
func (Nop) ObserveSweep(time.Duration) {}
func (Nop) Scheduled(string)           {}
