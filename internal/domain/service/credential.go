package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
	"github.com/rs/zerolog"
)

type credentialGate struct {
	dm    contract.DataManager
	cache contract.CredentialCache
	log   zerolog.Logger
}

// newCredentialGate accepts a nil cache.
func newCredentialGate(dm contract.DataManager, cache contract.CredentialCache, log zerolog.Logger) *credentialGate {
	return &credentialGate{dm: dm, cache: cache, log: log}
}

// Resolve returns the active credential of the user, or nil when the user has not
// authorized the app or revoked it. Cache failures fall through to the store.
func (g *credentialGate) Resolve(ctx context.Context, teamID, userID string) (*entity.Credential, error) {
	if g.cache != nil {
		cached, err := g.cache.Get(ctx, teamID, userID)
		if err != nil {
			g.log.Warn().Err(err).Str("team_id", teamID).Str("user_id", userID).Msg("credential cache read failed")
		} else if cached.IsActive() {
			return cached, nil
		}
	}

	cred, err := g.dm.Credential().Get(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if !cred.IsActive() {
		return nil, nil
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, cred); err != nil {
			g.log.Warn().Err(err).Str("team_id", teamID).Str("user_id", userID).Msg("credential cache write failed")
		}
	}

	return cred, nil
}

// Store saves an active token for the user, replacing any previous one.
func (g *credentialGate) Store(ctx context.Context, teamID, userID, accessToken string) error {
	if teamID == "" || userID == "" || accessToken == "" {
		return fmt.Errorf("team, user and token are required: %w", domain.ErrValidation)
	}

	cred := &entity.Credential{
		TeamID:      teamID,
		UserID:      userID,
		AccessToken: accessToken,
		State:       entity.CredentialStateActive,
	}
	if err := g.dm.Credential().Upsert(ctx, cred); err != nil {
		return err
	}

	g.invalidate(ctx, teamID, userID)
	return nil
}

// Revoke marks the user's credential REVOKED. Pending messages of the user stay
// in the store until the user authorizes again.
func (g *credentialGate) Revoke(ctx context.Context, teamID, userID string) error {
	existing, err := g.dm.Credential().Get(ctx, teamID, userID)
	if err != nil {
		return err
	}

	cred := &entity.Credential{
		TeamID: teamID,
		UserID: userID,
		State:  entity.CredentialStateRevoked,
	}
	if existing != nil {
		cred.AccessToken = existing.AccessToken
		cred.CreatedAt = existing.CreatedAt
	}
	if err := g.dm.Credential().Upsert(ctx, cred); err != nil {
		return err
	}

	g.invalidate(ctx, teamID, userID)
	return nil
}

func (g *credentialGate) invalidate(ctx context.Context, teamID, userID string) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Invalidate(ctx, teamID, userID); err != nil {
		g.log.Warn().Err(err).Str("team_id", teamID).Str("user_id", userID).Msg("credential cache invalidation failed")
	}
}
