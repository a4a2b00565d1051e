package memory

import (
	"context"
	"sync"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/pkg/errors"
)

// UserStore keeps users and their profiles in memory.
type UserStore struct {
	mutex    sync.RWMutex
	users    map[model.UserID]*model.BaseUser
	profiles map[model.UserID]model.Profile
}

// FindOrCreateUser implements port.UserStore.
func (s *UserStore) FindOrCreateUser(ctx context.Context, provider string, subject string) (model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, u := range s.users {
		if u.Provider() == provider && u.Subject() == subject {
			return model.CopyUser(u), nil
		}
	}

	user := model.NewUser(provider, subject, "", "")
	s.users[user.ID()] = user

	return model.CopyUser(user), nil
}

// GetUserByID implements port.UserStore.
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return model.CopyUser(user), nil
}

// SaveUser implements port.UserStore.
func (s *UserStore) SaveUser(ctx context.Context, user model.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.users[user.ID()] = model.CopyUser(user)

	return nil
}

// GetProfile implements port.ProfileStore.
func (s *UserStore) GetProfile(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	profile, exists := s.profiles[userID]
	if !exists {
		return model.NewProfile(userID), nil
	}

	return &profile, nil
}

// SaveProfile implements port.ProfileStore.
func (s *UserStore) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.users[profile.UserID]; !exists {
		return errors.WithStack(port.ErrNotFound)
	}

	s.profiles[profile.UserID] = *profile

	return nil
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:    make(map[model.UserID]*model.BaseUser),
		profiles: make(map[model.UserID]model.Profile),
	}
}

var (
	_ port.UserStore    = &UserStore{}
	_ port.ProfileStore = &UserStore{}
)
