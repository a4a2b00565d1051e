package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

var getAuthnEventsFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*authn.Events, error) {
	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	events := authn.NewEvents()

	events.Subscribe(authn.AuthStateListenerFunc(func(ctx context.Context, event authn.AuthStateEvent, user *authn.User) error {
		ctx = slogx.WithAttrs(ctx, slog.String("provider", user.Provider), slog.String("subject", user.Subject))

		switch event {
		case authn.SignedIn:
			if err := syncUser(ctx, userStore, user); err != nil {
				return errors.WithStack(err)
			}

			slog.InfoContext(ctx, "user signed in")

		case authn.SignedOut:
			slog.InfoContext(ctx, "user signed out")
		}

		return nil
	}))

	return events, nil
})

// syncUser finds or creates the application user matching the identity and
// refreshes its display name and email.
func syncUser(ctx context.Context, userStore port.UserStore, authnUser *authn.User) error {
	user, err := userStore.FindOrCreateUser(ctx, authnUser.Provider, authnUser.Subject)
	if err != nil {
		return errors.WithStack(err)
	}

	if user.DisplayName() == authnUser.DisplayName && user.Email() == authnUser.Email {
		return nil
	}

	updatable := model.CopyUser(user)
	updatable.SetDisplayName(authnUser.DisplayName)
	updatable.SetEmail(authnUser.Email)

	if err := userStore.SaveUser(ctx, updatable); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
