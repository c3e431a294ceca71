package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"trinity/config"
	mockUsecase "trinity/internal/mocks/usecase"
	"trinity/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkerServer_ReconcileLoop(t *testing.T) {
	reconcileUC := mockUsecase.NewMockReconciliationUsecase(t)
	ran := make(chan struct{}, 4)
	reconcileUC.EXPECT().Reconcile(mock.Anything).
		Run(func(context.Context) {
			select {
			case ran <- struct{}{}:
			default:
			}
		}).
		Return(&usecase.ReconcileResult{Scanned: 1, Resolved: 1}, nil)

	s := &workerServer{
		cfg:         &config.Config{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		reconcileUC: reconcileUC,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.reconcileLoop(ctx, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("reconcile never ran")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestWorkerServer_ReconcileOnce_ErrorIsLogged(t *testing.T) {
	reconcileUC := mockUsecase.NewMockReconciliationUsecase(t)
	reconcileUC.EXPECT().Reconcile(mock.Anything).Return(nil, errors.New("db down")).Once()

	s := &workerServer{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		reconcileUC: reconcileUC,
	}

	assert.NotPanics(t, func() { s.reconcileOnce(context.Background()) })
}
