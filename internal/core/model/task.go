package model

import (
	"github.com/rs/xid"
)

type TaskID string

func NewTaskID() TaskID {
	return TaskID(xid.New().String())
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists the board statuses in display order.
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

type Task interface {
	WithID[TaskID]

	Title() string
	Description() string
	Status() TaskStatus
	// AssigneeID returns the identifier of the assigned user, or an empty
	// identifier if the task is unassigned.
	AssigneeID() UserID
	// Assignee returns the display name of the assigned user, or an empty
	// string if the task is unassigned.
	Assignee() string
}

type BaseTask struct {
	id          TaskID
	title       string
	description string
	status      TaskStatus
	assigneeID  UserID
	assignee    string
}

// Assignee implements Task.
func (t *BaseTask) Assignee() string {
	return t.assignee
}

// AssigneeID implements Task.
func (t *BaseTask) AssigneeID() UserID {
	return t.assigneeID
}

// Description implements Task.
func (t *BaseTask) Description() string {
	return t.description
}

// ID implements Task.
func (t *BaseTask) ID() TaskID {
	return t.id
}

// Status implements Task.
func (t *BaseTask) Status() TaskStatus {
	return t.status
}

// Title implements Task.
func (t *BaseTask) Title() string {
	return t.title
}

var _ Task = &BaseTask{}

type TaskOptionFunc func(t *BaseTask)

func WithTaskDescription(description string) TaskOptionFunc {
	return func(t *BaseTask) {
		t.description = description
	}
}

func WithTaskStatus(status TaskStatus) TaskOptionFunc {
	return func(t *BaseTask) {
		t.status = status
	}
}

func WithTaskAssignee(id UserID, displayName string) TaskOptionFunc {
	return func(t *BaseTask) {
		t.assigneeID = id
		t.assignee = displayName
	}
}

func NewTask(id TaskID, title string, funcs ...TaskOptionFunc) *BaseTask {
	task := &BaseTask{
		id:     id,
		title:  title,
		status: TaskStatusPending,
	}

	for _, fn := range funcs {
		fn(task)
	}

	return task
}
