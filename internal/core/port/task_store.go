package port

import (
	"context"

	"github.com/bornholm/maven/internal/core/model"
)

type TaskStore interface {
	// ListTasks returns the full set of tasks, in creation order
	ListTasks(ctx context.Context) ([]model.Task, error)

	// GetTaskByID finds a task by its ID, or returns ErrNotFound if not found
	GetTaskByID(ctx context.Context, id model.TaskID) (model.Task, error)

	// CreateTask persists a new task
	CreateTask(ctx context.Context, task model.Task) error

	// UpdateTaskStatus sets the status of an existing task. It returns
	// ErrNotFound if the task does not exist and ErrInvalidStatus if the
	// status is outside of the board enumeration
	UpdateTaskStatus(ctx context.Context, id model.TaskID, status model.TaskStatus) error

	// DeleteTask deletes a task by its ID
	DeleteTask(ctx context.Context, id model.TaskID) error
}
