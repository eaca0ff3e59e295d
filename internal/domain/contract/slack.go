package contract

import "context"

// Sender posts a message to a Slack channel on behalf of the user owning accessToken.
// This allows mocking in tests while keeping the real implementation simple
type Sender interface {
	Send(ctx context.Context, accessToken, channelID, text string) error
}
