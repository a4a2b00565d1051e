package setup

import (
	"context"

	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/http/flash"
	"github.com/pkg/errors"
)

var getFlashStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*flash.Store, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return flash.NewStore(sessionStore, flash.DefaultSessionName), nil
})
