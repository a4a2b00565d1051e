package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/pkg/errors"
)

type TaskStore struct {
	mutex sync.RWMutex
	tasks []*model.BaseTask
}

// CreateTask implements port.TaskStore.
func (s *TaskStore) CreateTask(ctx context.Context, task model.Task) error {
	if !task.Status().Valid() {
		return errors.WithStack(port.ErrInvalidStatus)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(task.ID())
	if idx != -1 {
		return errors.Errorf("task '%s' already exists", task.ID())
	}

	s.tasks = append(s.tasks, copyTask(task))

	return nil
}

// DeleteTask implements port.TaskStore.
func (s *TaskStore) DeleteTask(ctx context.Context, id model.TaskID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return errors.WithStack(port.ErrNotFound)
	}

	s.tasks = slices.Delete(s.tasks, idx, idx+1)

	return nil
}

// GetTaskByID implements port.TaskStore.
func (s *TaskStore) GetTaskByID(ctx context.Context, id model.TaskID) (model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return copyTask(s.tasks[idx]), nil
}

// ListTasks implements port.TaskStore.
func (s *TaskStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tasks := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, copyTask(t))
	}

	return tasks, nil
}

// UpdateTaskStatus implements port.TaskStore.
func (s *TaskStore) UpdateTaskStatus(ctx context.Context, id model.TaskID, status model.TaskStatus) error {
	if !status.Valid() {
		return errors.WithStack(port.ErrInvalidStatus)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return errors.WithStack(port.ErrNotFound)
	}

	updated := copyTask(s.tasks[idx])
	model.WithTaskStatus(status)(updated)
	s.tasks[idx] = updated

	return nil
}

func (s *TaskStore) indexOf(id model.TaskID) int {
	return slices.IndexFunc(s.tasks, func(t *model.BaseTask) bool {
		return t.ID() == id
	})
}

// copyTask detaches stored tasks from the ones handed to callers, so that
// snapshots are never patched in place.
func copyTask(t model.Task) *model.BaseTask {
	return model.NewTask(t.ID(), t.Title(),
		model.WithTaskDescription(t.Description()),
		model.WithTaskStatus(t.Status()),
		model.WithTaskAssignee(t.AssigneeID(), t.Assignee()),
	)
}

func NewTaskStore(tasks ...model.Task) *TaskStore {
	store := &TaskStore{
		tasks: make([]*model.BaseTask, 0, len(tasks)),
	}

	for _, t := range tasks {
		store.tasks = append(store.tasks, copyTask(t))
	}

	return store
}

var _ port.TaskStore = &TaskStore{}
