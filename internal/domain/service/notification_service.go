package service

import (
	"context"
)

// MaxPushBatch is the provider limit of tokens per multicast.
const MaxPushBatch = 500

// PushMessage is a push notification payload.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushBatchResult summarizes a multicast send.
type PushBatchResult struct {
	SuccessCount int
	FailureCount int
	// InvalidTokens were rejected as unregistered or malformed and should be forgotten.
	InvalidTokens []string
}

// NotificationService sends push notifications to devices.
type NotificationService interface {
	// SendBatch sends the message to at most MaxPushBatch tokens.
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (*PushBatchResult, error)
}
