package setup

import (
	"context"

	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/filesystem/backend"
	"github.com/pkg/errors"
)

var getAvatarStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.AvatarStore, error) {
	store, err := backend.New(conf.Storage.Avatars.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "could not create avatar store")
	}

	return store, nil
})
