package port

import (
	"context"

	"github.com/bornholm/maven/internal/core/model"
)

type ProfileStore interface {
	// GetProfile returns the profile of the given user. A user without a saved
	// profile gets an empty one.
	GetProfile(ctx context.Context, userID model.UserID) (*model.Profile, error)

	// SaveProfile replaces the profile of its user
	SaveProfile(ctx context.Context, profile *model.Profile) error
}
