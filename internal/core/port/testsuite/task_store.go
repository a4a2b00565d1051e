package testsuite

import (
	"context"
	"testing"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// TestTaskStore checks the behaviors every port.TaskStore implementation
// must share.
func TestTaskStore(t *testing.T, factory func(t *testing.T) (port.TaskStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.TaskStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "ListInCreationOrder",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				if err := createTasks(ctx, store, "a1", "a2", "a3"); err != nil {
					return errors.WithStack(err)
				}

				tasks, err := store.ListTasks(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 3, len(tasks); e != g {
					t.Fatalf("len(tasks): expected %d, got %d", e, g)
				}

				for i, id := range []model.TaskID{"a1", "a2", "a3"} {
					if e, g := id, tasks[i].ID(); e != g {
						t.Errorf("tasks[%d].ID(): expected '%s', got '%s'", i, e, g)
					}
				}

				if t.Failed() {
					t.Logf("tasks: %s", spew.Sdump(tasks))
				}

				return nil
			},
		},
		{
			Name: "UpdateStatus",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				if err := createTasks(ctx, store, "a1"); err != nil {
					return errors.WithStack(err)
				}

				if err := store.UpdateTaskStatus(ctx, "a1", model.TaskStatusCompleted); err != nil {
					return errors.WithStack(err)
				}

				task, err := store.GetTaskByID(ctx, "a1")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := model.TaskStatusCompleted, task.Status(); e != g {
					t.Errorf("task.Status(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "UpdateStatusErrors",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				if err := createTasks(ctx, store, "a1"); err != nil {
					return errors.WithStack(err)
				}

				if err := store.UpdateTaskStatus(ctx, "unknown", model.TaskStatusCompleted); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("unknown task: expected port.ErrNotFound, got %+v", err)
				}

				if err := store.UpdateTaskStatus(ctx, "a1", "archived"); !errors.Is(err, port.ErrInvalidStatus) {
					t.Errorf("invalid status: expected port.ErrInvalidStatus, got %+v", err)
				}

				task, err := store.GetTaskByID(ctx, "a1")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := model.TaskStatusPending, task.Status(); e != g {
					t.Errorf("task.Status(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "Delete",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				if err := createTasks(ctx, store, "a1", "a2"); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteTask(ctx, "a1"); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.GetTaskByID(ctx, "a1"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("deleted task: expected port.ErrNotFound, got %+v", err)
				}

				if err := store.DeleteTask(ctx, "a1"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("second deletion: expected port.ErrNotFound, got %+v", err)
				}

				tasks, err := store.ListTasks(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(tasks); e != g {
					t.Errorf("len(tasks): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "RejectInvalidStatus",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := model.NewTask("a1", "Invalid", model.WithTaskStatus("archived"))

				if err := store.CreateTask(ctx, task); !errors.Is(err, port.ErrInvalidStatus) {
					t.Errorf("expected port.ErrInvalidStatus, got %+v", err)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if err := tc.Run(t, context.Background(), store); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		})
	}
}

func createTasks(ctx context.Context, store port.TaskStore, ids ...model.TaskID) error {
	for _, id := range ids {
		task := model.NewTask(id, "Task "+string(id), model.WithTaskDescription("Description of "+string(id)))

		if err := store.CreateTask(ctx, task); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
