package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
	"github.com/mattn/go-sqlite3"
)

const messageColumns = `day_bucket, sort_key, id, deliver_at, team_id, user_id,
	channel_id, payload, state, created_at, updated_at`

type messageRepository struct {
	db dbConn
}

func newMessageRepository(db dbConn) contract.MessageRepo {
	return &messageRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (*entity.ScheduledMessage, error) {
	msg := &entity.ScheduledMessage{}
	var (
		deliverAt, payload, state string
		createdAt, updatedAt      int64
	)
	err := row.Scan(
		&msg.DayBucket,
		&msg.SortKey,
		&msg.ID,
		&deliverAt,
		&msg.TeamID,
		&msg.UserID,
		&msg.ChannelID,
		&payload,
		&state,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	msg.DeliverAt, err = time.Parse(domain.ISOLayout, deliverAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deliver_at %q: %w", deliverAt, err)
	}
	msg.Payload, err = entity.DecodePayload(payload)
	if err != nil {
		return nil, err
	}
	msg.State = entity.MessageState(state)
	msg.CreatedAt = time.UnixMilli(createdAt).UTC()
	msg.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return msg, nil
}

func (r *messageRepository) Create(ctx context.Context, msg *entity.ScheduledMessage) error {
	query := `
		INSERT INTO scheduled_messages (` + messageColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	payload, err := entity.EncodePayload(msg.Payload)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		msg.DayBucket,
		msg.SortKey,
		msg.ID,
		domain.FormatISO(msg.DeliverAt),
		msg.TeamID,
		msg.UserID,
		msg.ChannelID,
		payload,
		string(msg.State),
		msg.CreatedAt.UnixMilli(),
		msg.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("message key %s already exists: %w", msg.SortKey, domain.ErrConditionFailed)
		}
		return storeErr("create scheduled message", err)
	}

	return nil
}

func (r *messageRepository) ListByOwner(ctx context.Context, teamID, userID string) ([]*entity.ScheduledMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM scheduled_messages
		WHERE team_id = ? AND user_id = ?
		ORDER BY sort_key
	`

	return r.list(ctx, "list messages by owner", query, teamID, userID)
}

func (r *messageRepository) ListByOwnerAndID(ctx context.Context, teamID, userID, id string) ([]*entity.ScheduledMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM scheduled_messages
		WHERE team_id = ? AND id = ? AND user_id = ?
	`

	return r.list(ctx, "list messages by id", query, teamID, id, userID)
}

func (r *messageRepository) QueryDue(ctx context.Context, dayBucket string, asOf time.Time) ([]*entity.ScheduledMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM scheduled_messages
		WHERE day_bucket = ? AND sort_key <= ?
		ORDER BY sort_key
	`

	return r.list(ctx, "query due messages", query, dayBucket, domain.DueUpperBound(asOf))
}

func (r *messageRepository) list(ctx context.Context, op, query string, args ...any) ([]*entity.ScheduledMessage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()

	var messages []*entity.ScheduledMessage
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}

	return messages, nil
}

func (r *messageRepository) Delete(ctx context.Context, dayBucket, sortKey string) error {
	query := `DELETE FROM scheduled_messages WHERE day_bucket = ? AND sort_key = ?`

	result, err := r.db.ExecContext(ctx, query, dayBucket, sortKey)
	if err != nil {
		return storeErr("delete scheduled message", err)
	}

	return expectOneRow(result, domain.ErrMessageNotFound)
}

func (r *messageRepository) CancelPending(ctx context.Context, id, dayBucket, sortKey string) error {
	query := `
		DELETE FROM scheduled_messages
		WHERE day_bucket = ? AND sort_key = ? AND id = ? AND state = ?
	`

	result, err := r.db.ExecContext(ctx, query, dayBucket, sortKey, id, string(entity.MessageStatePending))
	if err != nil {
		return storeErr("cancel scheduled message", err)
	}

	return expectOneRow(result, domain.ErrConditionFailed)
}

func (r *messageRepository) MarkDelivered(ctx context.Context, id, dayBucket, sortKey string) error {
	query := `
		UPDATE scheduled_messages SET
			state = ?,
			updated_at = ?
		WHERE day_bucket = ? AND sort_key = ? AND id = ? AND state = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		string(entity.MessageStateDelivered),
		time.Now().UnixMilli(),
		dayBucket,
		sortKey,
		id,
		string(entity.MessageStatePending),
	)
	if err != nil {
		return storeErr("mark message delivered", err)
	}

	return expectOneRow(result, domain.ErrConditionFailed)
}

// expectOneRow maps "no row matched" to errNone.
func expectOneRow(result interface{ RowsAffected() (int64, error) }, errNone error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return storeErr("read affected rows", err)
	}
	if n == 0 {
		return errNone
	}
	return nil
}
