package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/http/handler/checkout"
	"github.com/bornholm/maven/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

func getCheckoutHandlerFromConfig(ctx context.Context, conf *config.Config) (*checkout.Handler, error) {
	provider, err := getCheckoutProviderFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	middlewares := make([]func(http.Handler) http.Handler, 0)

	if conf.HTTP.RateLimit.Enabled {
		middlewares = append(middlewares, ratelimit.Middleware(
			ratelimit.WithTrustHeaders(conf.HTTP.RateLimit.TrustHeaders),
			ratelimit.WithInterval(conf.HTTP.RateLimit.Interval),
			ratelimit.WithMaxBurst(conf.HTTP.RateLimit.MaxBurst),
			ratelimit.WithCache(conf.HTTP.RateLimit.CacheSize, conf.HTTP.RateLimit.CacheTTL),
		))
	}

	return checkout.NewHandler(provider, middlewares...), nil
}
