package memory

import (
	"context"
	"testing"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/pkg/errors"
)

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()

	user, err := store.FindOrCreateUser(ctx, "github", "42")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	again, err := store.FindOrCreateUser(ctx, "github", "42")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := user.ID(), again.ID(); e != g {
		t.Errorf("again.ID(): expected '%s', got '%s'", e, g)
	}

	profile, err := store.GetProfile(ctx, user.ID())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := model.ThemeLight, profile.Settings.Theme; e != g {
		t.Errorf("profile.Settings.Theme: expected '%s', got '%s'", e, g)
	}

	profile.FullName = "Jane Doe"

	if err := store.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("%+v", err)
	}

	saved, err := store.GetProfile(ctx, user.ID())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "Jane Doe", saved.FullName; e != g {
		t.Errorf("saved.FullName: expected '%s', got '%s'", e, g)
	}

	if err := store.SaveProfile(ctx, model.NewProfile(model.NewUserID())); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got %+v", err)
	}
}
