package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageState is the lifecycle state of a scheduled message.
type MessageState string

const (
	// MessageStatePending is the only actionable state.
	MessageStatePending MessageState = "PENDING"
	// MessageStateDelivered is terminal; the row is removed right after the send.
	MessageStateDelivered MessageState = "DELIVERED"
)

// ScheduledMessage is a message waiting to be posted at DeliverAt.
//
// DayBucket and SortKey form the storage key. DayBucket is the calendar day of
// DeliverAt in the canonical timezone and SortKey is "<ISO instant>,<ID>".
type ScheduledMessage struct {
	DayBucket string
	SortKey   string
	ID        string
	DeliverAt time.Time
	TeamID    string
	UserID    string
	ChannelID string
	Payload   Payload
	State     MessageState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending reports whether the message can still be delivered or cancelled.
func (m *ScheduledMessage) IsPending() bool {
	return m.State == MessageStatePending
}

// Payload is everything needed to deliver the message, captured when it was scheduled.
type Payload struct {
	TeamID      string `json:"team_id"`
	TeamDomain  string `json:"team_domain,omitempty"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name,omitempty"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name,omitempty"`
	Command     string `json:"command,omitempty"`
	Text        string `json:"text"`
	CleanText   string `json:"clean_text"`
	ResponseURL string `json:"response_url,omitempty"`
}

// SendRequest is the canonical inbound request to schedule a message.
type SendRequest struct {
	TeamID      string
	TeamDomain  string
	ChannelID   string
	ChannelName string
	UserID      string
	UserName    string
	Command     string
	Text        string
	ResponseURL string
}

// EncodePayload serializes the payload the way it is persisted.
func EncodePayload(p Payload) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}
	return string(b), nil
}

// DecodePayload reverses EncodePayload.
func DecodePayload(raw string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Payload{}, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return p, nil
}
