package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/maven/internal/adapter/stripe"
	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/core/port"
)

var getCheckoutProviderFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.CheckoutProvider, error) {
	if conf.Checkout.SecretKey == "" || conf.Checkout.PriceID == "" {
		slog.WarnContext(ctx, "checkout is not fully configured, session creation will fail")
	}

	return stripe.NewCheckoutProvider(conf.Checkout.SecretKey, conf.Checkout.PriceID), nil
})
