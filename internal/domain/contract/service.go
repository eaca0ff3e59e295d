package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain/entity"
)

// MessageService holds the user-facing use cases behind the slash commands.
type MessageService interface {
	Schedule(ctx context.Context, req entity.SendRequest) (*entity.ScheduledMessage, error)
	List(ctx context.Context, teamID, userID string) ([]*entity.ScheduledMessage, error)
	Delete(ctx context.Context, teamID, userID, id string) (*entity.ScheduledMessage, error)
	FormatDate(msg *entity.ScheduledMessage) string
}

// CredentialGate resolves the token a user authorized the app to post with.
// A nil credential with a nil error means "not authorized".
type CredentialGate interface {
	Resolve(ctx context.Context, teamID, userID string) (*entity.Credential, error)
}

// CredentialCache is an optional look-aside cache in front of the credential store.
type CredentialCache interface {
	Get(ctx context.Context, teamID, userID string) (*entity.Credential, error)
	Set(ctx context.Context, cred *entity.Credential) error
	Invalidate(ctx context.Context, teamID, userID string) error
}

// Metrics records scheduling and delivery outcomes.
type Metrics interface {
	SweepItem(outcome string)
	ObserveSweep(d time.Duration)
	Scheduled(result string)
}
