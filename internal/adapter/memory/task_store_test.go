package memory

import (
	"context"
	"testing"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestTaskStore(t *testing.T) {
	ctx := context.Background()

	store := NewTaskStore(
		model.NewTask("1", "Write copy"),
	)

	if err := store.CreateTask(ctx, model.NewTask("2", "Ship landing", model.WithTaskStatus(model.TaskStatusInProgress))); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := store.CreateTask(ctx, model.NewTask("2", "Duplicate")); err == nil {
		t.Errorf("creating a duplicated task should fail")
	}

	if err := store.CreateTask(ctx, model.NewTask("3", "Invalid", model.WithTaskStatus("archived"))); !errors.Is(err, port.ErrInvalidStatus) {
		t.Errorf("err: expected port.ErrInvalidStatus, got %+v", err)
	}

	snapshot, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(snapshot); e != g {
		t.Fatalf("len(snapshot): expected %d, got %d", e, g)
	}

	if err := store.UpdateTaskStatus(ctx, "1", model.TaskStatusCompleted); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Snapshots are detached from the store
	if e, g := model.TaskStatusPending, snapshot[0].Status(); e != g {
		t.Errorf("snapshot[0].Status(): expected %s, got %s", e, g)
	}

	task, err := store.GetTaskByID(ctx, "1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.TaskStatusCompleted, task.Status(); e != g {
		t.Errorf("task.Status(): expected %s, got %s", e, g)
	}

	if err := store.UpdateTaskStatus(ctx, "1", "archived"); !errors.Is(err, port.ErrInvalidStatus) {
		t.Errorf("err: expected port.ErrInvalidStatus, got %+v", err)
	}

	if err := store.UpdateTaskStatus(ctx, "unknown", model.TaskStatusCompleted); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got %+v", err)
	}

	if err := store.DeleteTask(ctx, "2"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.GetTaskByID(ctx, "2"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got %+v", err)
	}
}

func TestTaskStoreSuite(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		return NewTaskStore(), nil
	})
}
