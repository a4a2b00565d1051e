package setup

import (
	"context"
	"sort"
	"sync"

	"github.com/bornholm/maven/internal/config"
	"github.com/pkg/errors"
)

type fromConfigFunc[T any] func(ctx context.Context, conf *config.Config) (T, error)

// createFromConfigOnce memoizes the given factory per configuration, so that
// every component built from the same configuration shares its dependencies.
func createFromConfigOnce[T any](fn fromConfigFunc[T]) fromConfigFunc[T] {
	var (
		mutex     sync.Mutex
		instances = make(map[*config.Config]T)
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if instance, exists := instances[conf]; exists {
			return instance, nil
		}

		instance, err := fn(ctx, conf)
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		instances[conf] = instance

		return instance, nil
	}
}

var ErrNotRegistered = errors.New("not registered")

// Registry maps implementation names to factories.
type Registry[T any] struct {
	mutex     sync.RWMutex
	factories map[string]fromConfigFunc[T]
}

func (r *Registry[T]) Register(name string, factory fromConfigFunc[T]) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.factories[name] = factory
}

func (r *Registry[T]) From(ctx context.Context, name string, conf *config.Config) (T, error) {
	r.mutex.RLock()
	factory, exists := r.factories[name]
	r.mutex.RUnlock()

	if !exists {
		return *new(T), errors.Wrapf(ErrNotRegistered, "no implementation named '%s'", name)
	}

	instance, err := factory(ctx, conf)
	if err != nil {
		return *new(T), errors.WithStack(err)
	}

	return instance, nil
}

func (r *Registry[T]) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]fromConfigFunc[T]),
	}
}
