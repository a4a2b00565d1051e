package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/maven/internal/adapter/cache"
	"github.com/bornholm/maven/internal/adapter/memory"
	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/pkg/errors"
)

var TaskStore = NewRegistry[port.TaskStore]()

func init() {
	TaskStore.Register("gorm", func(ctx context.Context, conf *config.Config) (port.TaskStore, error) {
		store, err := getGormStoreFromConfig(ctx, conf)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return store, nil
	})

	TaskStore.Register("memory", createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TaskStore, error) {
		return memory.NewTaskStore(), nil
	}))
}

// getTaskStoreFromConfig returns the snapshot cache placed in front of the
// configured task store. The board controller invalidates it on each
// successful update.
var getTaskStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*cache.TaskStore, error) {
	backend, err := TaskStore.From(ctx, conf.Storage.Tasks.Store, conf)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create task store '%s'", conf.Storage.Tasks.Store)
	}

	slog.DebugContext(ctx, "using cached task store", slog.String("store", conf.Storage.Tasks.Store), slog.Duration("ttl", conf.Storage.Tasks.SnapshotTTL))

	return cache.NewTaskStore(backend, conf.Storage.Tasks.SnapshotTTL), nil
})

// NewTaskStoreFromConfig exposes the task store to the command line.
func NewTaskStoreFromConfig(ctx context.Context, conf *config.Config) (port.TaskStore, error) {
	store, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
}
