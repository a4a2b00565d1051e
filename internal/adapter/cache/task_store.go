package cache

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

const snapshotKey = "snapshot"

// TaskStore serves the board snapshot from memory. The snapshot is only
// ever replaced as a whole: status updates go straight to the backend and
// the cached snapshot stays untouched until Invalidate is called.
type TaskStore struct {
	backend port.TaskStore
	cache   *expirable.LRU[string, []model.Task]
	group   singleflight.Group

	// generation is bumped on each invalidation, so that loads started
	// before it never repopulate the cache
	generation atomic.Uint64
}

// Invalidate drops the cached snapshot so that the next ListTasks call
// reloads it from the backend.
func (s *TaskStore) Invalidate(ctx context.Context) {
	s.generation.Add(1)
	s.cache.Remove(snapshotKey)
}

// ListTasks implements [port.TaskStore].
func (s *TaskStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	if tasks, exists := s.cache.Get(snapshotKey); exists {
		return tasks, nil
	}

	generation := s.generation.Load()

	result, err, _ := s.group.Do(strconv.FormatUint(generation, 10), func() (any, error) {
		tasks, err := s.backend.ListTasks(ctx)
		if err != nil {
			return nil, err
		}

		if generation == s.generation.Load() {
			s.cache.Add(snapshotKey, tasks)
		}

		return tasks, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]model.Task), nil
}

// GetTaskByID implements [port.TaskStore].
func (s *TaskStore) GetTaskByID(ctx context.Context, id model.TaskID) (model.Task, error) {
	return s.backend.GetTaskByID(ctx, id)
}

// CreateTask implements [port.TaskStore].
func (s *TaskStore) CreateTask(ctx context.Context, task model.Task) error {
	defer s.Invalidate(ctx)

	return s.backend.CreateTask(ctx, task)
}

// UpdateTaskStatus implements [port.TaskStore].
func (s *TaskStore) UpdateTaskStatus(ctx context.Context, id model.TaskID, status model.TaskStatus) error {
	return s.backend.UpdateTaskStatus(ctx, id, status)
}

// DeleteTask implements [port.TaskStore].
func (s *TaskStore) DeleteTask(ctx context.Context, id model.TaskID) error {
	defer s.Invalidate(ctx)

	return s.backend.DeleteTask(ctx, id)
}

func NewTaskStore(backend port.TaskStore, ttl time.Duration) *TaskStore {
	return &TaskStore{
		backend: backend,
		cache:   expirable.NewLRU[string, []model.Task](1, nil, ttl),
	}
}

var _ port.TaskStore = &TaskStore{}
