package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
	"gorm.io/gorm"
)

// Transactor runs a unit of work inside one store transaction
type Transactor interface {
	// WithinTx calls fn with repositories bound to a new transaction. The
	// transaction commits when fn returns nil and rolls back otherwise. Transient
	// failures rerun fn from scratch, so fn must not carry state between attempts.
	WithinTx(ctx context.Context, fn func(repos *Repositories) error) error
}

type gormTransactor struct {
	db         *gorm.DB
	maxRetries uint64
}

// NewTransactor creates a transactor that retries transient failures up to maxRetries times
func NewTransactor(db *gorm.DB, maxRetries int) Transactor {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &gormTransactor{db: db, maxRetries: uint64(maxRetries)}
}

func (t *gormTransactor) WithinTx(ctx context.Context, fn func(repos *Repositories) error) error {
	attempt := 0
	operation := func() error {
		attempt++
		err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(NewRepositories(tx))
		})
		if err == nil {
			return nil
		}
		if IsTransient(err) {
			logger.Warn("Transient store error, retrying", "attempt", attempt, "error", err.Error())
			return err
		}
		return backoff.Permanent(err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = time.Second
	b.MaxElapsedTime = 10 * time.Second
	policy := backoff.WithContext(backoff.WithMaxRetries(b, t.maxRetries), ctx)

	err := backoff.Retry(operation, policy)
	if err != nil && IsTransient(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
