package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	Message() MessageRepo
	Credential() CredentialRepo
	Ping(ctx context.Context) error
	Close() error
}

// MessageRepo defines the contract for the scheduled message store.
//
// Every mutation that may race with another actor is conditional and reports a lost
// race with domain.ErrConditionFailed.
type MessageRepo interface {
	Create(ctx context.Context, msg *entity.ScheduledMessage) error
	ListByOwner(ctx context.Context, teamID, userID string) ([]*entity.ScheduledMessage, error)
	ListByOwnerAndID(ctx context.Context, teamID, userID, id string) ([]*entity.ScheduledMessage, error)
	Delete(ctx context.Context, dayBucket, sortKey string) error
	CancelPending(ctx context.Context, id, dayBucket, sortKey string) error
	QueryDue(ctx context.Context, dayBucket string, asOf time.Time) ([]*entity.ScheduledMessage, error)
	MarkDelivered(ctx context.Context, id, dayBucket, sortKey string) error
}

// CredentialRepo defines the contract for the credential store
type CredentialRepo interface {
	Get(ctx context.Context, teamID, userID string) (*entity.Credential, error)
	Upsert(ctx context.Context, cred *entity.Credential) error
}
