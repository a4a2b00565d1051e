package setup

import (
	"context"

	"github.com/bornholm/maven/internal/adapter/notify"
	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/core/service/board"
	"github.com/pkg/errors"
)

var getBoardControllerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*board.Controller, error) {
	taskStore, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	notifier := notify.Multi{
		notify.Log{},
		notify.Contextual(),
	}

	controller := board.NewController(
		taskStore, notifier,
		board.WithRefreshFunc(taskStore.Invalidate),
	)

	return controller, nil
})

// NewBoardControllerFromConfig exposes the board controller to the command
// line.
func NewBoardControllerFromConfig(ctx context.Context, conf *config.Config) (*board.Controller, error) {
	controller, err := getBoardControllerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return controller, nil
}
