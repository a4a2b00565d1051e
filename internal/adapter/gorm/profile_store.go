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

// GetProfile implements port.ProfileStore.
func (s *Store) GetProfile(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	var profile *model.Profile

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		var p Profile

		if err := db.First(&p, "user_id = ?", string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				profile = model.NewProfile(userID)
				return nil
			}

			return errors.WithStack(err)
		}

		profile = toProfile(&p)

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

// SaveProfile implements port.ProfileStore.
func (s *Store) SaveProfile(ctx context.Context, profile *model.Profile) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		var total int64
		if err := db.Model(&User{}).Where("id = ?", string(profile.UserID)).Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		if total == 0 {
			return errors.Wrapf(port.ErrNotFound, "could not find user '%s'", profile.UserID)
		}

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).Create(fromProfile(profile)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var _ port.ProfileStore = &Store{}
