package setup

import (
	"context"

	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/core/service"
	"github.com/pkg/errors"
)

var getProfileManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ProfileManager, error) {
	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	avatarStore, err := getAvatarStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	profileManager := service.NewProfileManager(
		userStore, avatarStore,
		service.WithProfileManagerMaxAvatarSize(conf.Storage.Avatars.MaxSize),
		service.WithProfileManagerAvatarURLPrefix("/avatars/"),
	)

	return profileManager, nil
})
