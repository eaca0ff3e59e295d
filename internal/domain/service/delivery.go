package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
	"github.com/diegoclair/slack-send-later/internal/metrics"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// SweepReport counts what one sweep did.
type SweepReport struct {
	Buckets      int
	Examined     int
	Sent         int
	Skipped      int
	Deferred     int
	Aborted      int
	LostRace     int
	SendFailed   int
	DeleteFailed int
	Errors       int
}

// HasErrors reports store or credential lookup failures. Those items are picked
// up again by the next sweep.
func (r SweepReport) HasErrors() bool {
	return r.Errors > 0
}

// DeliveryOptions tunes the sweep.
type DeliveryOptions struct {
	// LookbackDays is how many buckets before today are scanned as well.
	LookbackDays int

	SendTimeout time.Duration

	// SendRatePerSec caps outbound posts; zero disables the limit.
	SendRatePerSec float64
}

type deliveryScheduler struct {
	dm         contract.DataManager
	gate       contract.CredentialGate
	sender     contract.Sender
	normalizer *Normalizer
	metrics    contract.Metrics
	limiter    *rate.Limiter
	log        zerolog.Logger
	now        func() time.Time
	opts       DeliveryOptions
}

func newDeliveryScheduler(
	dm contract.DataManager,
	gate contract.CredentialGate,
	sender contract.Sender,
	normalizer *Normalizer,
	metrics contract.Metrics,
	log zerolog.Logger,
	now func() time.Time,
	opts DeliveryOptions,
) *deliveryScheduler {
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if opts.SendRatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.SendRatePerSec), 1)
	}

	return &deliveryScheduler{
		dm:         dm,
		gate:       gate,
		sender:     sender,
		normalizer: normalizer,
		metrics:    metrics,
		limiter:    limiter,
		log:        log,
		now:        now,
		opts:       opts,
	}
}

// Sweep delivers every pending message that is due. Each message is claimed with
// a conditional MarkDelivered before it is sent, so overlapping sweeps in any
// number of processes send it at most once.
//
// A failure on one message never stops the others.
func (d *deliveryScheduler) Sweep(ctx context.Context) SweepReport {
	started := time.Now()
	now := d.now().UTC()

	var report SweepReport
	for _, bucket := range d.normalizer.DueBuckets(now, d.opts.LookbackDays) {
		if ctx.Err() != nil {
			break
		}
		report.Buckets++

		items, err := d.dm.Message().QueryDue(ctx, bucket, now)
		if err != nil {
			d.log.Error().Err(err).Str("day_bucket", bucket).Msg("failed to query due messages")
			d.metrics.SweepItem(metrics.OutcomeBucketQueryFailed)
			report.Errors++
			continue
		}

		for _, msg := range items {
			if ctx.Err() != nil {
				break
			}
			report.Examined++
			d.deliver(ctx, msg, now, &report)
		}
	}

	d.metrics.ObserveSweep(time.Since(started))
	d.log.Debug().
		Time("as_of", now).
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

func (d *deliveryScheduler) deliver(ctx context.Context, msg *entity.ScheduledMessage, now time.Time, report *SweepReport) {
	log := d.log.With().
		Str("id", msg.ID).
		Str("day_bucket", msg.DayBucket).
		Str("sort_key", msg.SortKey).
		Logger()

	if !msg.IsPending() {
		log.Debug().Str("state", string(msg.State)).Msg("skipping message that is not pending")
		d.metrics.SweepItem(metrics.OutcomeNotPending)
		report.Skipped++
		return
	}
	if msg.DeliverAt.After(now) {
		log.Debug().Time("deliver_at", msg.DeliverAt).Msg("skipping message that is not due")
		d.metrics.SweepItem(metrics.OutcomeNotDue)
		report.Skipped++
		return
	}

	cred, err := d.gate.Resolve(ctx, msg.TeamID, msg.UserID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to resolve credential")
		d.metrics.SweepItem(metrics.OutcomeCredentialError)
		report.Errors++
		return
	}
	if cred == nil {
		log.Info().Str("team_id", msg.TeamID).Str("user_id", msg.UserID).Msg("no active credential, leaving message pending")
		d.metrics.SweepItem(metrics.OutcomeCredentialMissing)
		report.Deferred++
		return
	}

	// take the rate token before claiming so a claimed message is sent right away
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			log.Warn().Err(err).Msg("sweep stopped while waiting to send, message stays pending")
			d.metrics.SweepItem(metrics.OutcomeAborted)
			report.Aborted++
			return
		}
	}

	err = d.dm.Message().MarkDelivered(ctx, msg.ID, msg.DayBucket, msg.SortKey)
	if errors.Is(err, domain.ErrConditionFailed) {
		log.Debug().Msg("message already claimed by another sweep")
		d.metrics.SweepItem(metrics.OutcomeLostRace)
		report.LostRace++
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to claim message")
		d.metrics.SweepItem(metrics.OutcomeTransitionError)
		report.Errors++
		return
	}

	channelID := msg.Payload.ChannelID
	if channelID == "" {
		channelID = msg.ChannelID
	}

	// claimed: from here on the sweep deadline or a shutdown must not strand the message
	claimedCtx := context.WithoutCancel(ctx)

	if err := d.send(claimedCtx, cred.AccessToken, channelID, msg.Payload.CleanText); err != nil {
		log.Error().
			Err(err).
			Str("team_id", msg.TeamID).
			Str("user_id", msg.UserID).
			Str("channel_id", channelID).
			Msg("send failed after claim, message left DELIVERED for manual inspection")
		d.metrics.SweepItem(metrics.OutcomeSendFailed)
		report.SendFailed++
		return
	}
	report.Sent++
	d.metrics.SweepItem(metrics.OutcomeSent)

	cleanupCtx, cancel := context.WithTimeout(claimedCtx, d.opts.SendTimeout)
	defer cancel()

	err = d.dm.Message().Delete(cleanupCtx, msg.DayBucket, msg.SortKey)
	if err != nil && !errors.Is(err, domain.ErrMessageNotFound) {
		log.Error().Err(err).Msg("failed to delete delivered message, it stays DELIVERED and is not sent again")
		d.metrics.SweepItem(metrics.OutcomeDeleteFailed)
		report.DeleteFailed++
		return
	}

	log.Info().Str("channel_id", channelID).Msg("message delivered")
}

func (d *deliveryScheduler) send(ctx context.Context, accessToken, channelID, text string) error {
	sendCtx, cancel := context.WithTimeout(ctx, d.opts.SendTimeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, accessToken, channelID, text); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendFailed, err)
	}
	return nil
}
