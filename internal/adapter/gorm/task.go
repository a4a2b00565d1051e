package gorm

import (
	"time"

	"github.com/bornholm/maven/internal/core/model"
)

type Task struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Title       string
	Description string
	Status      string `gorm:"index"`

	AssigneeID *string
	Assignee   *User `gorm:"constraint:OnDelete:SET NULL;"`
}

type wrappedTask struct {
	t *Task
}

// Assignee implements model.Task.
func (w *wrappedTask) Assignee() string {
	if w.t.Assignee == nil {
		return ""
	}

	if w.t.Assignee.Profile != nil && w.t.Assignee.Profile.FullName != "" {
		return w.t.Assignee.Profile.FullName
	}

	return w.t.Assignee.DisplayName
}

// AssigneeID implements model.Task.
func (w *wrappedTask) AssigneeID() model.UserID {
	if w.t.AssigneeID == nil {
		return ""
	}

	return model.UserID(*w.t.AssigneeID)
}

// Description implements model.Task.
func (w *wrappedTask) Description() string {
	return w.t.Description
}

// ID implements model.Task.
func (w *wrappedTask) ID() model.TaskID {
	return model.TaskID(w.t.ID)
}

// Status implements model.Task.
func (w *wrappedTask) Status() model.TaskStatus {
	return model.TaskStatus(w.t.Status)
}

// Title implements model.Task.
func (w *wrappedTask) Title() string {
	return w.t.Title
}

var _ model.Task = &wrappedTask{}

func fromTask(t model.Task) *Task {
	task := &Task{
		ID:          string(t.ID()),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      string(t.Status()),
	}

	if assigneeID := t.AssigneeID(); assigneeID != "" {
		id := string(assigneeID)
		task.AssigneeID = &id
	}

	return task
}
