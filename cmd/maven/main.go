package main

import (
	"github.com/bornholm/maven/internal/command"
	"github.com/bornholm/maven/internal/command/tasks"
)

func main() {
	command.Main(
		"maven",
		"Maven command line",
		tasks.Command(),
	)
}
