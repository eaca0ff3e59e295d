package entity

import "time"

// CredentialState tells whether a credential may be used to post.
type CredentialState string

const (
	CredentialStateActive  CredentialState = "ACTIVE"
	CredentialStateRevoked CredentialState = "REVOKED"
)

// Credential is the per (team, user) token obtained by the authorization flow.
type Credential struct {
	TeamID      string          `json:"team_id"`
	UserID      string          `json:"user_id"`
	AccessToken string          `json:"access_token"`
	State       CredentialState `json:"state"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsActive reports whether the credential may be used.
func (c *Credential) IsActive() bool {
	return c != nil && c.State == CredentialStateActive && c.AccessToken != ""
}
