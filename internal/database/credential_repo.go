package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
)

type credentialRepository struct {
	db dbConn
}

func newCredentialRepository(db dbConn) contract.CredentialRepo {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Get(ctx context.Context, teamID, userID string) (*entity.Credential, error) {
	query := `
		SELECT team_id, user_id, access_token, state, created_at, updated_at
		FROM credentials
		WHERE team_id = ? AND user_id = ?
	`

	cred := &entity.Credential{}
	var (
		state                string
		createdAt, updatedAt int64
	)
	err := r.db.QueryRowContext(ctx, query, teamID, userID).Scan(
		&cred.TeamID,
		&cred.UserID,
		&cred.AccessToken,
		&state,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get credential", err)
	}

	cred.State = entity.CredentialState(state)
	cred.CreatedAt = time.UnixMilli(createdAt).UTC()
	cred.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return cred, nil
}

func (r *credentialRepository) Upsert(ctx context.Context, cred *entity.Credential) error {
	query := `
		INSERT INTO credentials (team_id, user_id, access_token, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (team_id, user_id) DO UPDATE SET
			access_token = excluded.access_token,
			state = excluded.state,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC()
	if cred.CreatedAt.IsZero() {
		cred.CreatedAt = now
	}
	cred.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		cred.TeamID,
		cred.UserID,
		cred.AccessToken,
		string(cred.State),
		cred.CreatedAt.UnixMilli(),
		cred.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return storeErr("upsert credential", err)
	}

	return nil
}
