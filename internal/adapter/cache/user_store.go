package cache

import (
	"context"
	"time"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
)

type UserStore struct {
	backend      port.UserStore
	userCache    *MultiIndexCache[*CacheableUser]
	profileStore port.ProfileStore
	profileCache *MultiIndexCache[*CacheableProfile]
}

// FindOrCreateUser implements [port.UserStore].
func (s *UserStore) FindOrCreateUser(ctx context.Context, provider string, subject string) (model.User, error) {
	if user, exists := s.userCache.Get(getUserIdentityCacheKey(provider, subject)); exists {
		return user, nil
	}

	user, err := s.backend.FindOrCreateUser(ctx, provider, subject)
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

// GetUserByID implements [port.UserStore].
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	if user, exists := s.userCache.Get(getUserIDCacheKey(userID)); exists {
		return user, nil
	}

	return s.backend.GetUserByID(ctx, userID)
}

// SaveUser implements [port.UserStore].
func (s *UserStore) SaveUser(ctx context.Context, user model.User) error {
	defer s.userCache.Remove(getUserIDCacheKey(user.ID()))

	return s.backend.SaveUser(ctx, user)
}

// GetProfile implements [port.ProfileStore].
func (s *UserStore) GetProfile(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	if profile, exists := s.profileCache.Get(string(userID)); exists {
		return profile.Detached(), nil
	}

	profile, err := s.profileStore.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.profileCache.Add(NewCacheableProfile(profile))

	return profile, nil
}

// SaveProfile implements [port.ProfileStore].
func (s *UserStore) SaveProfile(ctx context.Context, profile *model.Profile) error {
	defer s.profileCache.Remove(string(profile.UserID))

	return s.profileStore.SaveProfile(ctx, profile)
}

type UserStoreBackend interface {
	port.UserStore
	port.ProfileStore
}

func NewUserStore(backend UserStoreBackend, size int, ttl time.Duration) *UserStore {
	return &UserStore{
		backend:      backend,
		userCache:    NewMultiIndexCache[*CacheableUser](size, ttl),
		profileStore: backend,
		profileCache: NewMultiIndexCache[*CacheableProfile](size, ttl),
	}
}

var (
	_ port.UserStore    = &UserStore{}
	_ port.ProfileStore = &UserStore{}
)
