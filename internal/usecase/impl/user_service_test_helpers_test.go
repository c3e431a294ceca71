package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"trinity/config"
	"trinity/internal/domain/repository"
	mockRepo "trinity/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(lowStockThreshold int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Report: &config.ReportConfig{
			LowStockThreshold: lowStockThreshold,
		},
		Worker: &config.WorkerConfig{
			StaleAfter: 10 * time.Minute,
			BatchSize:  50,
		},
	}
}

// expectTx runs every transaction against the given factory and returns the callback's error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
