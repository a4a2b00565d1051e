package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/http/handler/webui"
	"github.com/bornholm/maven/internal/http/middleware/authn"
	"github.com/bornholm/maven/internal/http/middleware/bridge"
	"github.com/pkg/errors"
)

func getWebUIHandlerFromConfig(ctx context.Context, conf *config.Config) (*webui.Handler, error) {
	controller, err := getBoardControllerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	taskStore, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	profileManager, err := getProfileManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	oidcHandler, err := getOIDCAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	authnMiddleware := oidcHandler.Middleware()
	bridgeMiddleware := bridge.Middleware(userStore, userStore)

	handler := webui.NewHandler(
		controller, taskStore, profileManager,
		webui.WithAuthenticate(func(next http.Handler) http.Handler {
			return authnMiddleware(bridgeMiddleware(next))
		}),
		webui.WithIdentify(authn.Optional(oidcHandler)),
		webui.WithMaxAvatarSize(conf.Storage.Avatars.MaxSize),
		webui.WithPublishableKey(conf.Checkout.PublishableKey),
	)

	return handler, nil
}
