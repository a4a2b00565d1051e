package setup

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/maven/internal/build"
	"github.com/bornholm/maven/internal/config"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// SetupSentry initializes the error reporting client. It returns a flush
// function to call before exiting.
func SetupSentry(ctx context.Context, conf *config.Config) (func(), error) {
	if conf.Sentry.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         conf.Sentry.DSN,
		Environment: conf.Sentry.Environment,
		Release:     build.ShortVersion,
		Debug:       conf.Sentry.Debug,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize sentry")
	}

	slog.DebugContext(ctx, "sentry error reporting enabled", slog.String("environment", conf.Sentry.Environment))

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}
