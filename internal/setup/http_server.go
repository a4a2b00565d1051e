package setup

import (
	"context"

	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/http"
	"github.com/bornholm/maven/internal/http/handler/metrics"
	"github.com/bornholm/maven/internal/http/middleware/authn"
	"github.com/bornholm/maven/internal/http/middleware/bridge"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	oidcHandler, err := getOIDCAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure user store from config")
	}

	checkout, err := getCheckoutHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure checkout handler from config")
	}

	webui, err := getWebUIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure webui handler from config")
	}

	flashStore, err := getFlashStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure flash store from config")
	}

	apiAuthn := authn.Middleware(authn.Unauthorized, oidcHandler)
	apiBridge := bridge.Middleware(userStore, nil)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithShutdownTimeout(conf.HTTP.ShutdownTimeout),
		http.WithMiddlewares(flashStore.Middleware()),
		http.WithMount("/auth/", oidcHandler),
		http.WithMount("/api/v1/", apiAuthn(apiBridge(api))),
		http.WithMount("/functions/", checkout),
		http.WithMount("/", webui),
	}

	if conf.HTTP.Metrics.Enabled {
		options = append(options, http.WithMount("/metrics/", metrics.NewHandler()))
	}

	server := http.NewServer(options...)

	return server, nil
}
