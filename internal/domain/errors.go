package domain

import "errors"

var (
	// ErrValidation marks a malformed or unauthenticated inbound request.
	ErrValidation = errors.New("invalid request")

	// ErrNoDateFound means the parser found no date span in the text.
	ErrNoDateFound = errors.New("no date found")

	// ErrEmptyMessage means a date was found but nothing precedes it.
	ErrEmptyMessage = errors.New("empty message body")

	// ErrCredentialMissing means the sender has no active credential.
	ErrCredentialMissing = errors.New("credential missing")

	// ErrStoreUnavailable wraps transient storage failures.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrConditionFailed is returned when a conditional write lost to another actor.
	// It is an expected outcome, not a failure.
	ErrConditionFailed = errors.New("conditional check failed")

	// ErrMessageNotFound is returned when no message matches the key or handle.
	ErrMessageNotFound = errors.New("message not found")

	// ErrAlreadyHandled is returned when a user delete races with a delivery that won.
	ErrAlreadyHandled = errors.New("message already handled")

	// ErrSendFailed wraps a rejection from the outbound chat client.
	ErrSendFailed = errors.New("send failed")
)
