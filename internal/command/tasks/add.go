package tasks

import (
	"fmt"
	"strings"

	"github.com/bornholm/maven/internal/command/common"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagDescription = "description"
	flagStatus      = "status"
)

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a task to the board",
		ArgsUsage: "<title>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagDescription,
				Aliases: []string{"d"},
				Usage:   "Description of the task",
			},
			&cli.StringFlag{
				Name:    flagStatus,
				Aliases: []string{"s"},
				Value:   string(model.TaskStatusPending),
				Usage:   "Initial status of the task (available: 'pending', 'in-progress', 'completed')",
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			title := strings.TrimSpace(strings.Join(cCtx.Args().Slice(), " "))
			if title == "" {
				return errors.New("a task title is required")
			}

			status := model.TaskStatus(cCtx.String(flagStatus))
			if !status.Valid() {
				return errors.Errorf("invalid status '%s'", status)
			}

			conf, err := common.LoadConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			store, err := setup.NewTaskStoreFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			task := model.NewTask(
				model.NewTaskID(), title,
				model.WithTaskDescription(cCtx.String(flagDescription)),
				model.WithTaskStatus(status),
			)

			if err := store.CreateTask(ctx, task); err != nil {
				return errors.Wrap(err, "could not create task")
			}

			fmt.Fprintln(cCtx.App.Writer, task.ID())

			return nil
		},
	}
}
