package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/filesystem"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	gifHeader = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
)

func TestProfileManagerUpdate(t *testing.T) {
	ctx := context.Background()

	profiles := newFakeProfileStore()
	avatars := filesystem.NewAvatarStore(afero.NewMemMapFs())

	manager := NewProfileManager(profiles, avatars)

	profile, err := manager.GetProfile(ctx, "user1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.ThemeLight, profile.Settings.Theme; e != g {
		t.Errorf("profile.Settings.Theme: expected %s, got %s", e, g)
	}

	updated, err := manager.UpdateProfile(ctx, "user1", ProfileUpdate{
		FullName: "  Jane Doe ",
		Bio:      "Builder",
		Settings: model.ProfileSettings{Theme: model.ThemeDark, EmailNotifications: true},
		Avatar:   bytes.NewReader(pngHeader),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := model.Profile{
		UserID:    "user1",
		FullName:  "Jane Doe",
		Bio:       "Builder",
		AvatarURL: "/avatars/user1/avatar.png",
		Settings:  model.ProfileSettings{Theme: model.ThemeDark, EmailNotifications: true},
	}

	if e, g := expected, *updated; e != g {
		t.Errorf("updated profile: expected %s, got %s", spew.Sdump(e), spew.Sdump(g))
	}

	if e, g := string(pngHeader), readAvatar(t, avatars, "user1/avatar.png"); e != g {
		t.Errorf("stored avatar does not match uploaded one")
	}

	// Updating without an avatar keeps the current one
	updated, err = manager.UpdateProfile(ctx, "user1", ProfileUpdate{
		FullName: "Jane D.",
		Settings: model.ProfileSettings{Theme: model.ThemeLight},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "/avatars/user1/avatar.png", updated.AvatarURL; e != g {
		t.Errorf("updated.AvatarURL: expected '%s', got '%s'", e, g)
	}

	// Changing the avatar format removes the previous file
	updated, err = manager.UpdateProfile(ctx, "user1", ProfileUpdate{
		FullName: "Jane D.",
		Settings: model.ProfileSettings{Theme: model.ThemeLight},
		Avatar:   bytes.NewReader(gifHeader),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "/avatars/user1/avatar.gif", updated.AvatarURL; e != g {
		t.Errorf("updated.AvatarURL: expected '%s', got '%s'", e, g)
	}

	if _, err := avatars.OpenAvatar(ctx, "user1/avatar.png"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got %+v", err)
	}
}

func TestProfileManagerInvalidAvatar(t *testing.T) {
	ctx := context.Background()

	type testCase struct {
		Name   string
		Avatar io.Reader
	}

	testCases := []testCase{
		{
			Name:   "too large",
			Avatar: io.MultiReader(bytes.NewReader(pngHeader), bytes.NewReader(make([]byte, 1024))),
		},
		{
			Name:   "not an image",
			Avatar: strings.NewReader("hello world"),
		},
		{
			Name:   "vector image",
			Avatar: strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`),
		},
		{
			Name:   "empty",
			Avatar: strings.NewReader(""),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			profiles := newFakeProfileStore()
			avatars := filesystem.NewAvatarStore(afero.NewMemMapFs())

			manager := NewProfileManager(profiles, avatars, WithProfileManagerMaxAvatarSize(512))

			_, err := manager.UpdateProfile(ctx, "user1", ProfileUpdate{
				Settings: model.ProfileSettings{Theme: model.ThemeLight},
				Avatar:   tc.Avatar,
			})

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("err: expected *ValidationError, got %+v", err)
			}

			if e, g := 0, profiles.saves; e != g {
				t.Errorf("profiles.saves: expected %d, got %d", e, g)
			}
		})
	}
}

func TestProfileManagerCompensation(t *testing.T) {
	ctx := context.Background()

	profiles := newFakeProfileStore()
	avatars := filesystem.NewAvatarStore(afero.NewMemMapFs())

	manager := NewProfileManager(profiles, avatars)

	if _, err := manager.UpdateProfile(ctx, "user1", ProfileUpdate{
		Settings: model.ProfileSettings{Theme: model.ThemeLight},
		Avatar:   bytes.NewReader(pngHeader),
	}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	profiles.failWith = errors.New("database is locked")

	replacement := append(append([]byte{}, pngHeader...), 0x01, 0x02)

	_, err := manager.UpdateProfile(ctx, "user1", ProfileUpdate{
		Settings: model.ProfileSettings{Theme: model.ThemeLight},
		Avatar:   bytes.NewReader(replacement),
	})
	if err == nil {
		t.Fatalf("update should have failed")
	}

	// The previous avatar is restored
	if e, g := string(pngHeader), readAvatar(t, avatars, "user1/avatar.png"); e != g {
		t.Errorf("stored avatar should have been restored")
	}

	_, err = manager.UpdateProfile(ctx, "user2", ProfileUpdate{
		Settings: model.ProfileSettings{Theme: model.ThemeLight},
		Avatar:   bytes.NewReader(pngHeader),
	})
	if err == nil {
		t.Fatalf("update should have failed")
	}

	// A newly written avatar is removed
	if _, err := avatars.OpenAvatar(ctx, "user2/avatar.png"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got %+v", err)
	}
}

func readAvatar(t *testing.T, avatars port.AvatarStore, path string) string {
	file, err := avatars.OpenAvatar(context.Background(), path)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return string(data)
}

type fakeProfileStore struct {
	mutex    sync.Mutex
	profiles map[model.UserID]model.Profile
	saves    int
	failWith error
}

// GetProfile implements port.ProfileStore.
func (s *fakeProfileStore) GetProfile(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profile, exists := s.profiles[userID]
	if !exists {
		return model.NewProfile(userID), nil
	}

	return &profile, nil
}

// SaveProfile implements port.ProfileStore.
func (s *fakeProfileStore) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.failWith != nil {
		return s.failWith
	}

	s.saves++
	s.profiles[profile.UserID] = *profile

	return nil
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		profiles: map[model.UserID]model.Profile{},
	}
}

var _ port.ProfileStore = &fakeProfileStore{}
