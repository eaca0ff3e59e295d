package database

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessage(id string, deliverAt time.Time) *entity.ScheduledMessage {
	now := time.Now().UTC()
	return &entity.ScheduledMessage{
		DayBucket: deliverAt.Format(domain.DayLayout),
		SortKey:   domain.SortKey(deliverAt, id),
		ID:        id,
		DeliverAt: deliverAt,
		TeamID:    "T123456789",
		UserID:    "U123456789",
		ChannelID: "C123456789",
		Payload: entity.Payload{
			TeamID:      "T123456789",
			ChannelID:   "C123456789",
			ChannelName: "general",
			UserID:      "U123456789",
			Text:        "standup notes tomorrow at 9am",
			CleanText:   "standup notes",
		},
		State:     entity.MessageStatePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMessageRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMessageRepository(db.conn)
	ctx := context.Background()

	msg := newTestMessage("abc123", time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, msg), "Failed to create scheduled message")

	// same key must not be silently overwritten
	dup := newTestMessage("abc123", msg.DeliverAt)
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrConditionFailed)
}

func TestMessageRepository_ListByOwnerAndID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMessageRepository(db.conn)
	ctx := context.Background()

	original := newTestMessage("abc123", time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, original))

	found, err := repo.ListByOwnerAndID(ctx, original.TeamID, original.UserID, original.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)

	got := found[0]
	assert.Equal(t, original.DayBucket, got.DayBucket)
	assert.Equal(t, original.SortKey, got.SortKey)
	assert.True(t, original.DeliverAt.Equal(got.DeliverAt))
	assert.Equal(t, original.Payload, got.Payload)
	assert.Equal(t, "standup notes", got.Payload.CleanText)
	assert.Equal(t, "C123456789", got.Payload.ChannelID)
	assert.Equal(t, entity.MessageStatePending, got.State)
	assert.Equal(t, original.CreatedAt.UnixMilli(), got.CreatedAt.UnixMilli())

	// another user of the same team cannot see it
	found, err = repo.ListByOwnerAndID(ctx, original.TeamID, "U999999999", original.ID)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMessageRepository_ListByOwner(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMessageRepository(db.conn)
	ctx := context.Background()

	later := newTestMessage("later", time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC))
	sooner := newTestMessage("sooner", time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))
	other := newTestMessage("other", time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))
	other.UserID = "U987654321"

	for _, m := range []*entity.ScheduledMessage{later, sooner, other} {
		require.NoError(t, repo.Create(ctx, m))
	}
	require.NoError(t, repo.MarkDelivered(ctx, later.ID, later.DayBucket, later.SortKey))

	found, err := repo.ListByOwner(ctx, "T123456789", "U123456789")
	require.NoError(t, err)
	require.Len(t, found, 2, "Expected both states to be returned")
	assert.Equal(t, "sooner", found[0].ID)
	assert.Equal(t, "later", found[1].ID)
	assert.Equal(t, entity.MessageStateDelivered, found[1].State)
}

func TestMessageRepository_QueryDue(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMessageRepository(db.conn)
	ctx := context.Background()

	asOf := time.Date(2024, 3, 2, 14, 1, 0, 0, time.UTC)
	due := newTestMessage("due", time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC))
	exact := newTestMessage("exact", asOf)
	future := newTestMessage("future", time.Date(2024, 3, 2, 14, 1, 0, 1_000_000, time.UTC))
	otherDay := newTestMessage("otherday", time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC))

	for _, m := range []*entity.ScheduledMessage{due, exact, future, otherDay} {
		require.NoError(t, repo.Create(ctx, m))
	}

	found, err := repo.QueryDue(ctx, "2024-03-02", asOf)
	require.NoError(t, err)

	var ids []string
	for _, m := range found {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"due", "exact"}, ids)
}

func TestMessageRepository_MarkDelivered(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMessageRepository(db.conn)
	ctx := context.Background()

	msg := newTestMessage("abc123", time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, msg))

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "Should fail precondition on id mismatch", id: "zzz999", wantErr: domain.ErrConditionFailed},
		{name: "Should transition pending message", id: "abc123"},
		{name: "Should fail precondition when already delivered", id: "abc123", wantErr: domain.ErrConditionFailed},
		{name: "Should keep failing precondition on retry", id: "abc123", wantErr: domain.ErrConditionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.MarkDelivered(ctx, tt.id, msg.DayBucket, msg.SortKey)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	found, err := repo.ListByOwnerAndID(ctx, msg.TeamID, msg.UserID, msg.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, entity.MessageStateDelivered, found[0].State)

	// missing item behaves like a lost race
	err = repo.MarkDelivered(ctx, "nope", "2024-03-02", "2024-03-02T14:00:00.000Z,nope")
	assert.ErrorIs(t, err, domain.ErrConditionFailed)
}

func TestMessageRepository_MarkDelivered_Concurrent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMessageRepository(db.conn)
	ctx := context.Background()

	msg := newTestMessage("abc123", time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, msg))

	const callers = 16
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		lost      atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.MarkDelivered(ctx, msg.ID, msg.DayBucket, msg.SortKey)
			switch {
			case err == nil:
				successes.Add(1)
			case assert.ErrorIs(t, err, domain.ErrConditionFailed):
				lost.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load(), "Expected exactly one transition to win")
	assert.Equal(t, int32(callers-1), lost.Load())
}

func TestMessageRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMessageRepository(db.conn)
	ctx := context.Background()

	msg := newTestMessage("abc123", time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, msg))

	require.NoError(t, repo.Delete(ctx, msg.DayBucket, msg.SortKey), "Failed to delete message")

	found, err := repo.ListByOwnerAndID(ctx, msg.TeamID, msg.UserID, msg.ID)
	require.NoError(t, err)
	assert.Empty(t, found, "Expected message to be deleted")

	err = repo.Delete(ctx, msg.DayBucket, msg.SortKey)
	assert.ErrorIs(t, err, domain.ErrMessageNotFound, "Expected second delete to report not found")
}

func TestMessageRepository_CancelPending(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMessageRepository(db.conn)
	ctx := context.Background()

	pending := newTestMessage("pending", time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC))
	claimed := newTestMessage("claimed", time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, pending))
	require.NoError(t, repo.Create(ctx, claimed))
	require.NoError(t, repo.MarkDelivered(ctx, claimed.ID, claimed.DayBucket, claimed.SortKey))

	require.NoError(t, repo.CancelPending(ctx, pending.ID, pending.DayBucket, pending.SortKey))

	err := repo.CancelPending(ctx, claimed.ID, claimed.DayBucket, claimed.SortKey)
	assert.ErrorIs(t, err, domain.ErrConditionFailed, "Expected cancel to lose against a delivery")

	found, err := repo.ListByOwnerAndID(ctx, claimed.TeamID, claimed.UserID, claimed.ID)
	require.NoError(t, err)
	assert.Len(t, found, 1, "Expected claimed message to be left for the sweep")
}
