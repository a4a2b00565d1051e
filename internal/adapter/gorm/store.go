package gorm

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Store struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

const (
	maxRetries  = 10
	baseBackoff = 500 * time.Millisecond
)

// withRetry runs fn against the database, optionally inside a transaction,
// and retries it while sqlite reports one of the given error codes.
func (s *Store) withRetry(ctx context.Context, transaction bool, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := baseBackoff

	for attempt := 0; ; attempt++ {
		if transaction {
			err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return fn(ctx, tx)
			})
		} else {
			err = fn(ctx, db.WithContext(ctx))
		}

		if err == nil {
			return nil
		}

		if attempt >= maxRetries || !isRetryable(err, codes...) {
			return errors.WithStack(err)
		}

		slog.DebugContext(ctx, "database busy, retrying", slog.Int("attempt", attempt+1), slog.Duration("backoff", backoff), slogx.Error(err))

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}

		backoff *= 2
	}
}

func isRetryable(err error, codes ...sqlite3.ErrorCode) bool {
	var sqliteErr *sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return slices.Contains(codes, sqliteErr.Code())
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		getDatabase: createGetDatabase(db),
	}
}

func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			models := []any{
				&User{},
				&Profile{},
				&Task{},
			}

			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db, nil
	}
}
