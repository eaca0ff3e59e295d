package database

import (
	"context"

	"github.com/diegoclair/slack-send-later/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	messageRepo    contract.MessageRepo
	credentialRepo contract.CredentialRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.messageRepo = newMessageRepository(i.db.conn)
	i.credentialRepo = newCredentialRepository(i.db.conn)
}

// Message returns the scheduled message repository
func (i *instance) Message() contract.MessageRepo {
	return i.messageRepo
}

// Credential returns the credential repository
func (i *instance) Credential() contract.CredentialRepo {
	return i.credentialRepo
}

func (i *instance) Ping(ctx context.Context) error {
	if err := i.db.conn.PingContext(ctx); err != nil {
		return storeErr("ping database", err)
	}
	return nil
}

func (i *instance) Close() error {
	return i.db.Close()
}
