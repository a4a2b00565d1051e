package gorm

import (
	"context"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindOrCreateUser implements port.UserStore.
func (s *Store) FindOrCreateUser(ctx context.Context, provider, subject string) (model.User, error) {
	var user model.User
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		var u User

		err := db.Where("provider = ? AND subject = ?", provider, subject).
			Attrs(&User{
				ID:       string(model.NewUserID()),
				Provider: provider,
				Subject:  subject,
				Active:   true,
			}).
			FirstOrCreate(&u).Error
		if err != nil {
			return errors.WithStack(err)
		}

		user = &wrappedUser{&u}
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// GetUserByID implements port.UserStore.
func (s *Store) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	var user User

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "id = ?", string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// SaveUser implements port.UserStore.
func (s *Store) SaveUser(ctx context.Context, user model.User) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		gormUser := fromUser(user)

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Omit("Profile").Create(gormUser).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var _ port.UserStore = &Store{}
