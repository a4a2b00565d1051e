package tasks

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bornholm/maven/internal/command/common"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/core/service/board"
	"github.com/bornholm/maven/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the tasks, grouped by status",
		Flags: []cli.Flag{
			common.FlagFormat,
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := common.LoadConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			store, err := setup.NewTaskStoreFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := listTasks(ctx, cCtx.App.Writer, store, cCtx.String(common.ParamFormat)); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func listTasks(ctx context.Context, w io.Writer, store port.TaskStore, format string) error {
	tasks, err := store.ListTasks(ctx)
	if err != nil {
		return errors.Wrap(err, "could not list tasks")
	}

	buckets := board.Partition(tasks)

	switch format {
	case common.FormatYAML:
		manifest := Manifest{Tasks: make([]ManifestTask, 0, buckets.Len())}

		for _, column := range buckets.Columns() {
			for _, t := range column.Tasks {
				manifest.Tasks = append(manifest.Tasks, toManifestTask(t))
			}
		}

		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(manifest); err != nil {
			return errors.WithStack(err)
		}

		if err := encoder.Close(); err != nil {
			return errors.WithStack(err)
		}

		return nil

	case common.FormatText:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

		for _, column := range buckets.Columns() {
			fmt.Fprintf(tw, "%s (%d)\n", column.Title, len(column.Tasks))

			for _, t := range column.Tasks {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", t.ID(), t.Title(), assigneeLabel(t))
			}
		}

		if err := tw.Flush(); err != nil {
			return errors.WithStack(err)
		}

		return nil

	default:
		return errors.Errorf("unknown output format '%s'", format)
	}
}

func assigneeLabel(t model.Task) string {
	if t.Assignee() == "" {
		return "-"
	}

	return "@" + t.Assignee()
}
