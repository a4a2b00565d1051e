package setup

import (
	"context"

	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/http/handler/api"
	"github.com/pkg/errors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	controller, err := getBoardControllerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	taskStore, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return api.NewHandler(controller, taskStore), nil
}
