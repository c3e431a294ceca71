package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trinity/config"
	"trinity/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTokens(t *testing.T) {
	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = "t"
	}

	chunks := chunkTokens(tokens, service.MaxPushBatch)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 201)

	assert.Empty(t, chunkTokens(nil, service.MaxPushBatch))
}

func TestNewNotificationService_WithoutFirebase(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewNotificationService(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)

	result, err := svc.SendBatch(context.Background(), []string{"a", "b"}, service.PushMessage{Title: "Paid"})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Empty(t, result.InvalidTokens)
}
