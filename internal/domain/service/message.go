package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Schedule results reported to metrics.
const (
	scheduleOK                = "ok"
	scheduleNoDate            = "no_date"
	scheduleEmptyMessage      = "empty_message"
	scheduleCredentialMissing = "credential_missing"
	scheduleError             = "error"
)

type messageService struct {
	dm         contract.DataManager
	extractor  *dateExtractor
	normalizer *Normalizer
	gate       contract.CredentialGate
	metrics    contract.Metrics
	log        zerolog.Logger
	now        func() time.Time
	newID      func() string
}

func newMessageService(
	dm contract.DataManager,
	extractor *dateExtractor,
	normalizer *Normalizer,
	gate contract.CredentialGate,
	metrics contract.Metrics,
	log zerolog.Logger,
	now func() time.Time,
) *messageService {
	return &messageService{
		dm:         dm,
		extractor:  extractor,
		normalizer: normalizer,
		gate:       gate,
		metrics:    metrics,
		log:        log,
		now:        now,
		newID:      newMessageID,
	}
}

// newMessageID is a random UUID in URL-safe base64, 22 characters that all sort
// below domain.SortKeyUpperSentinel.
func newMessageID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// Schedule reads the delivery date out of req.Text and stores a PENDING message.
// Nothing is stored when the user has no active credential.
func (s *messageService) Schedule(ctx context.Context, req entity.SendRequest) (*entity.ScheduledMessage, error) {
	ext, err := s.extractor.Extract(req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoDateFound):
			s.metrics.Scheduled(scheduleNoDate)
		case errors.Is(err, domain.ErrEmptyMessage):
			s.metrics.Scheduled(scheduleEmptyMessage)
		default:
			s.metrics.Scheduled(scheduleError)
		}
		return nil, err
	}

	norm := s.normalizer.Normalize(ext.Date)

	cred, err := s.gate.Resolve(ctx, req.TeamID, req.UserID)
	if err != nil {
		s.metrics.Scheduled(scheduleError)
		return nil, err
	}
	if cred == nil {
		s.metrics.Scheduled(scheduleCredentialMissing)
		return nil, domain.ErrCredentialMissing
	}

	id := s.newID()
	now := s.now().UTC()
	msg := &entity.ScheduledMessage{
		DayBucket: norm.DayBucket,
		SortKey:   domain.SortKey(norm.Instant, id),
		ID:        id,
		DeliverAt: norm.Instant,
		TeamID:    req.TeamID,
		UserID:    req.UserID,
		ChannelID: req.ChannelID,
		Payload: entity.Payload{
			TeamID:      req.TeamID,
			TeamDomain:  req.TeamDomain,
			ChannelID:   req.ChannelID,
			ChannelName: req.ChannelName,
			UserID:      req.UserID,
			UserName:    req.UserName,
			Command:     req.Command,
			Text:        req.Text,
			CleanText:   ext.Body,
			ResponseURL: req.ResponseURL,
		},
		State:     entity.MessageStatePending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.dm.Message().Create(ctx, msg); err != nil {
		s.metrics.Scheduled(scheduleError)
		return nil, err
	}

	s.metrics.Scheduled(scheduleOK)
	s.log.Info().
		Str("id", msg.ID).
		Str("team_id", msg.TeamID).
		Str("user_id", msg.UserID).
		Str("day_bucket", msg.DayBucket).
		Str("deliver_at", norm.ISO).
		Str("span", ext.Span.Text).
		Msg("message scheduled")

	return msg, nil
}

// List returns the user's pending messages, soonest first.
func (s *messageService) List(ctx context.Context, teamID, userID string) ([]*entity.ScheduledMessage, error) {
	all, err := s.dm.Message().ListByOwner(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}

	pending := make([]*entity.ScheduledMessage, 0, len(all))
	for _, msg := range all {
		if msg.IsPending() {
			pending = append(pending, msg)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DeliverAt.Before(pending[j].DeliverAt)
	})

	return pending, nil
}

// Delete cancels a pending message of the user. A message a sweep already claimed
// reports domain.ErrAlreadyHandled.
func (s *messageService) Delete(ctx context.Context, teamID, userID, id string) (*entity.ScheduledMessage, error) {
	if id == "" {
		return nil, fmt.Errorf("missing message id: %w", domain.ErrValidation)
	}

	found, err := s.dm.Message().ListByOwnerAndID(ctx, teamID, userID, id)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrMessageNotFound
	}

	msg := found[0]
	if !msg.IsPending() {
		return msg, domain.ErrAlreadyHandled
	}

	err = s.dm.Message().CancelPending(ctx, msg.ID, msg.DayBucket, msg.SortKey)
	if errors.Is(err, domain.ErrConditionFailed) {
		s.log.Info().Str("id", msg.ID).Msg("delete lost to a delivery")
		return msg, domain.ErrAlreadyHandled
	}
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("id", msg.ID).Str("team_id", teamID).Str("user_id", userID).Msg("message deleted")
	return msg, nil
}

// FormatDate renders the delivery time of msg in the canonical timezone.
func (s *messageService) FormatDate(msg *entity.ScheduledMessage) string {
	return domain.FormatDisplayDate(msg.DeliverAt, s.normalizer.Location())
}
