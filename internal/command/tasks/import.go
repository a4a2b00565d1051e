package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/command/common"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const flagConcurrency = "concurrency"

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import tasks from a YAML manifest (use '-' for stdin)",
		ArgsUsage: "<file.yaml>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    flagConcurrency,
				Value:   4,
				Usage:   "Number of tasks created concurrently",
				EnvVars: []string{"MAVEN_CLI_CONCURRENCY"},
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			if cCtx.NArg() != 1 {
				return errors.New("expected a manifest file")
			}

			manifest, err := readManifest(cCtx.Args().First())
			if err != nil {
				return errors.WithStack(err)
			}

			conf, err := common.LoadConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			store, err := setup.NewTaskStoreFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			imported, err := importTasks(ctx, store, manifest, cCtx.Int(flagConcurrency))
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintf(cCtx.App.Writer, "%d task(s) imported\n", imported)

			return nil
		},
	}
}

func readManifest(path string) (*Manifest, error) {
	var reader io.Reader

	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		defer file.Close()

		reader = file
	}

	manifest, err := DecodeManifest(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode manifest '%s'", path)
	}

	return manifest, nil
}

// importTasks validates the whole manifest before creating any task, then
// creates them with at most concurrency parallel writes.
func importTasks(ctx context.Context, store port.TaskStore, manifest *Manifest, concurrency int) (int, error) {
	tasks := make([]model.Task, 0, len(manifest.Tasks))

	for i, entry := range manifest.Tasks {
		task, err := entry.Task()
		if err != nil {
			return 0, errors.Wrapf(err, "invalid task #%d", i)
		}

		tasks = append(tasks, task)
	}

	if concurrency < 1 {
		concurrency = 1
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for _, task := range tasks {
		group.Go(func() error {
			if err := store.CreateTask(ctx, task); err != nil {
				return errors.Wrapf(err, "could not create task '%s'", task.Title())
			}

			slog.DebugContext(slogx.WithAttrs(ctx, slog.String("taskID", string(task.ID()))), "task imported")

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, errors.WithStack(err)
	}

	return len(tasks), nil
}
