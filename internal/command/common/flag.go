package common

import (
	"github.com/urfave/cli/v2"
)

const (
	ParamFormat = "format"

	FormatText = "text"
	FormatYAML = "yaml"
)

var FlagFormat = &cli.StringFlag{
	Name:    ParamFormat,
	Aliases: []string{"o"},
	Value:   FormatText,
	Usage:   "Output format (available: 'text', 'yaml')",
}
