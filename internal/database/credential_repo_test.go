package database

import (
	"context"
	"testing"

	"github.com/diegoclair/slack-send-later/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepository_Get(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newCredentialRepository(db.conn)
	ctx := context.Background()

	// Test not found
	notFound, err := repo.Get(ctx, "T123456789", "U123456789")
	require.NoError(t, err, "Unexpected error when credential not found")
	assert.Nil(t, notFound, "Expected nil when credential not found")

	cred := &entity.Credential{
		TeamID:      "T123456789",
		UserID:      "U123456789",
		AccessToken: "xoxp-test",
		State:       entity.CredentialStateActive,
	}
	require.NoError(t, repo.Upsert(ctx, cred))

	found, err := repo.Get(ctx, "T123456789", "U123456789")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "xoxp-test", found.AccessToken)
	assert.Equal(t, entity.CredentialStateActive, found.State)
	assert.True(t, found.IsActive())
}

func TestCredentialRepository_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newCredentialRepository(db.conn)
	ctx := context.Background()

	cred := &entity.Credential{
		TeamID:      "T123456789",
		UserID:      "U123456789",
		AccessToken: "xoxp-first",
		State:       entity.CredentialStateActive,
	}
	require.NoError(t, repo.Upsert(ctx, cred))

	revoked := &entity.Credential{
		TeamID:      "T123456789",
		UserID:      "U123456789",
		AccessToken: "xoxp-first",
		State:       entity.CredentialStateRevoked,
	}
	require.NoError(t, repo.Upsert(ctx, revoked))

	found, err := repo.Get(ctx, "T123456789", "U123456789")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.CredentialStateRevoked, found.State)
	assert.False(t, found.IsActive())
	assert.Equal(t, cred.CreatedAt.UnixMilli(), found.CreatedAt.UnixMilli(), "Expected created_at to survive the update")
}
