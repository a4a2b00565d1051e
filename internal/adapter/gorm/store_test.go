package gorm

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/core/port/testsuite"
	"github.com/davecgh/go-spew/spew"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func newTestStore(t *testing.T) *Store {
	db, err := gorm.Open(gormlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		internalDB.Close()
	})

	return NewStore(db)
}

func TestTaskStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	user, err := store.FindOrCreateUser(ctx, "github", "jdoe")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	profile := model.NewProfile(user.ID())
	profile.FullName = "Jane Doe"

	if err := store.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	tasks := []model.Task{
		model.NewTask(model.NewTaskID(), "Write copy", model.WithTaskAssignee(user.ID(), "")),
		model.NewTask(model.NewTaskID(), "Ship landing", model.WithTaskStatus(model.TaskStatusInProgress)),
	}

	for _, task := range tasks {
		if err := store.CreateTask(ctx, task); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		// Keep creation timestamps ordered
		time.Sleep(10 * time.Millisecond)
	}

	snapshot, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := len(tasks), len(snapshot); e != g {
		t.Fatalf("len(snapshot): expected %d, got %d", e, g)
	}

	for i, task := range tasks {
		if e, g := task.ID(), snapshot[i].ID(); e != g {
			t.Errorf("snapshot[%d].ID(): expected %s, got %s", i, e, g)
		}
	}

	if e, g := "Jane Doe", snapshot[0].Assignee(); e != g {
		t.Errorf("snapshot[0].Assignee(): expected '%s', got '%s'", e, g)
	}

	if e, g := "", snapshot[1].Assignee(); e != g {
		t.Errorf("snapshot[1].Assignee(): expected '%s', got '%s'", e, g)
	}

	if err := store.UpdateTaskStatus(ctx, tasks[0].ID(), model.TaskStatusCompleted); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	task, err := store.GetTaskByID(ctx, tasks[0].ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.TaskStatusCompleted, task.Status(); e != g {
		t.Errorf("task.Status(): expected %s, got %s", e, g)
	}

	if err := store.UpdateTaskStatus(ctx, tasks[0].ID(), "archived"); !errors.Is(err, port.ErrInvalidStatus) {
		t.Errorf("err: expected port.ErrInvalidStatus, got %+v", err)
	}

	if err := store.UpdateTaskStatus(ctx, "unknown", model.TaskStatusCompleted); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got %+v", err)
	}

	if err := store.DeleteTask(ctx, tasks[1].ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.GetTaskByID(ctx, tasks[1].ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got %+v", err)
	}
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	user, err := store.FindOrCreateUser(ctx, "github", "jdoe")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !user.Active() {
		t.Errorf("new users should be active")
	}

	updated := model.CopyUser(user)
	updated.SetEmail("jdoe@example.net")
	updated.SetDisplayName("jdoe")

	if err := store.SaveUser(ctx, updated); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	found, err := store.FindOrCreateUser(ctx, "github", "jdoe")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := user.ID(), found.ID(); e != g {
		t.Errorf("found.ID(): expected %s, got %s", e, g)
	}

	if e, g := "jdoe@example.net", found.Email(); e != g {
		t.Errorf("found.Email(): expected '%s', got '%s'", e, g)
	}

	other, err := store.FindOrCreateUser(ctx, "google", "jdoe")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if user.ID() == other.ID() {
		t.Errorf("users from different providers should not share the same id")
	}

	if _, err := store.GetUserByID(ctx, "unknown"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got %+v", err)
	}
}

func TestProfileStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	user, err := store.FindOrCreateUser(ctx, "github", "jdoe")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	profile, err := store.GetProfile(ctx, user.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.ThemeLight, profile.Settings.Theme; e != g {
		t.Errorf("profile.Settings.Theme: expected %s, got %s", e, g)
	}

	profile.FullName = "Jane Doe"
	profile.Bio = "Builder"
	profile.AvatarURL = "/avatars/" + string(user.ID()) + "/avatar.png"
	profile.Settings.Theme = model.ThemeDark
	profile.Settings.EmailNotifications = true

	if err := store.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	profile.FullName = "Jane D."

	if err := store.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	saved, err := store.GetProfile(ctx, user.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := *profile, *saved; e != g {
		t.Errorf("saved profile mismatch: expected %s, got %s", spew.Sdump(e), spew.Sdump(g))
	}

	orphan := model.NewProfile("unknown")
	if err := store.SaveProfile(ctx, orphan); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got %+v", err)
	}
}

func TestTaskStoreSuite(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		return newTestStore(t), nil
	})
}
