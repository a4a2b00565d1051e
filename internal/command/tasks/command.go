package tasks

import (
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "Manage the tasks of the board",
		Subcommands: []*cli.Command{
			listCommand(),
			addCommand(),
			moveCommand(),
			importCommand(),
		},
	}
}
