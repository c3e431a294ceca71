package postgres

import (
	"context"

	"trinity/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) CartRepo() repository.CartRepository {
	return NewCartRepository(f.tx)
}

func (f *gormRepositoryFactory) InvoiceRepo() repository.InvoiceRepository {
	return NewInvoiceRepository(f.tx)
}

func (f *gormRepositoryFactory) CheckoutIntentRepo() repository.CheckoutIntentRepository {
	return NewCheckoutIntentRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.WithMessagef(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
