// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"trinity/config"
	"trinity/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewNotificationService returns the Firebase sender, or a logging no-op when Firebase is not configured.
func NewNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, push notifications are logged only")

		return &noopService{logger: logger}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase, logger)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendBatch sends the message to every token, MaxPushBatch tokens per multicast.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	result := &service.PushBatchResult{InvalidTokens: []string{}}

	for _, chunk := range chunkTokens(tokens, service.MaxPushBatch) {
		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return result, errors.Wrap(err, "failed to send multicast notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[idx])
			}
		}
	}

	return result, nil
}

// chunkTokens splits tokens into slices of at most size elements.
func chunkTokens(tokens []string, size int) [][]string {
	chunks := make([][]string, 0, (len(tokens)+size-1)/size)
	for start := 0; start < len(tokens); start += size {
		end := min(start+size, len(tokens))
		chunks = append(chunks, tokens[start:end])
	}

	return chunks
}

type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	s.logger.InfoContext(ctx, "[NoopPush] Skipping push notification",
		slog.Int("tokens", len(tokens)),
		slog.String("title", msg.Title),
	)

	return &service.PushBatchResult{InvalidTokens: []string{}}, nil
}
