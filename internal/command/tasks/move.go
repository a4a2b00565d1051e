package tasks

import (
	"context"
	"fmt"

	"github.com/bornholm/maven/internal/adapter/notify"
	"github.com/bornholm/maven/internal/command/common"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/core/service/board"
	"github.com/bornholm/maven/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func moveCommand() *cli.Command {
	return &cli.Command{
		Name:      "move",
		Usage:     "Move a task to another status",
		ArgsUsage: "<task-id> <status>",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			if cCtx.NArg() != 2 {
				return errors.New("expected a task id and a target status")
			}

			conf, err := common.LoadConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			store, err := setup.NewTaskStoreFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			controller, err := setup.NewBoardControllerFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			gesture := board.Gesture{
				SourceID: model.TaskID(cCtx.Args().Get(0)),
				TargetID: cCtx.Args().Get(1),
			}

			notification, dispatched, err := moveTask(ctx, controller, store, gesture)
			if err != nil {
				return errors.WithStack(err)
			}

			if !dispatched {
				fmt.Fprintln(cCtx.App.Writer, "nothing to do")
				return nil
			}

			fmt.Fprintf(cCtx.App.Writer, "%s: %s\n", notification.Title, notification.Message)

			if notification.Kind == model.NotificationError {
				return errors.New(notification.Message)
			}

			return nil
		},
	}
}

// moveTask drives the board controller with a keyboard gesture and waits
// for the resulting notification.
func moveTask(ctx context.Context, controller *board.Controller, store port.TaskStore, gesture board.Gesture) (model.Notification, bool, error) {
	tasks, err := store.ListTasks(ctx)
	if err != nil {
		return model.Notification{}, false, errors.Wrap(err, "could not load tasks")
	}

	collector := notify.NewCollector()

	mutation := controller.HandleGesture(notify.WithCollector(ctx, collector), board.Snapshot{Tasks: tasks}, gesture)
	if mutation == nil {
		return model.Notification{}, false, nil
	}

	if err := mutation.Wait(ctx); err != nil && ctx.Err() != nil {
		return model.Notification{}, true, errors.WithStack(err)
	}

	notifications := collector.Notifications()
	if len(notifications) == 0 {
		return model.Notification{}, true, errors.New("no notification received")
	}

	return notifications[len(notifications)-1], true, nil
}
