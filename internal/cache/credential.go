package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-send-later/internal/config"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

const (
	credentialKeyPrefix  = "sendlater:credential:"
	defaultCredentialTTL = 30 * time.Second
)

// CredentialCache keeps active credentials in Redis for a short TTL.
type CredentialCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ contract.CredentialCache = (*CredentialCache)(nil)

func New(cfg config.RedisConfig) *CredentialCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewWithClient(client, cfg.CredentialTTL)
}

func NewWithClient(client *redis.Client, ttl time.Duration) *CredentialCache {
	if ttl <= 0 {
		ttl = defaultCredentialTTL
	}
	return &CredentialCache{client: client, ttl: ttl}
}

func credentialKey(teamID, userID string) string {
	return credentialKeyPrefix + teamID + ":" + userID
}

// Get returns nil, nil on a miss.
func (c *CredentialCache) Get(ctx context.Context, teamID, userID string) (*entity.Credential, error) {
	data, err := c.client.Get(ctx, credentialKey(teamID, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached credential: %w", err)
	}

	var cred entity.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached credential: %w", err)
	}
	return &cred, nil
}

func (c *CredentialCache) Set(ctx context.Context, cred *entity.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}

	if err := c.client.Set(ctx, credentialKey(cred.TeamID, cred.UserID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache credential: %w", err)
	}
	return nil
}

func (c *CredentialCache) Invalidate(ctx context.Context, teamID, userID string) error {
	if err := c.client.Del(ctx, credentialKey(teamID, userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached credential: %w", err)
	}
	return nil
}

func (c *CredentialCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *CredentialCache) Close() error {
	return c.client.Close()
}
