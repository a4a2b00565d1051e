package common

import (
	"sync"

	"github.com/bornholm/maven/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var (
	loadConfigOnce sync.Once
	loadedConfig   *config.Config
	loadConfigErr  error
)

// LoadConfig parses the environment once per process, so that every
// subcommand shares the same configured components.
func LoadConfig(ctx *cli.Context) (*config.Config, error) {
	loadConfigOnce.Do(func() {
		loadedConfig, loadConfigErr = config.Parse()
	})
	if loadConfigErr != nil {
		return nil, errors.Wrap(loadConfigErr, "could not parse config")
	}

	return loadedConfig, nil
}
