package board

import (
	"github.com/bornholm/maven/internal/core/model"
)

// Buckets partitions a snapshot by task status.
type Buckets struct {
	Pending    []model.Task
	InProgress []model.Task
	Completed  []model.Task
}

// Get returns the bucket associated with the given status, or nil if the
// status is outside of the board enumeration.
func (b Buckets) Get(status model.TaskStatus) []model.Task {
	switch status {
	case model.TaskStatusPending:
		return b.Pending
	case model.TaskStatusInProgress:
		return b.InProgress
	case model.TaskStatusCompleted:
		return b.Completed
	default:
		return nil
	}
}

func (b Buckets) Len() int {
	return len(b.Pending) + len(b.InProgress) + len(b.Completed)
}

type Column struct {
	// Status doubles as the drop target identifier of the column
	Status model.TaskStatus
	Title  string
	Tasks  []model.Task
}

var columnTitles = map[model.TaskStatus]string{
	model.TaskStatusPending:    "To Do",
	model.TaskStatusInProgress: "In Progress",
	model.TaskStatusCompleted:  "Completed",
}

// Columns returns the buckets in display order.
func (b Buckets) Columns() []Column {
	columns := make([]Column, 0, len(model.TaskStatuses))
	for _, status := range model.TaskStatuses {
		columns = append(columns, Column{
			Status: status,
			Title:  columnTitles[status],
			Tasks:  b.Get(status),
		})
	}

	return columns
}

// Partition splits the given tasks into status buckets, keeping their
// relative order. Tasks with an unknown status are dropped.
func Partition(tasks []model.Task) Buckets {
	buckets := Buckets{
		Pending:    make([]model.Task, 0),
		InProgress: make([]model.Task, 0),
		Completed:  make([]model.Task, 0),
	}

	for _, t := range tasks {
		if t == nil {
			continue
		}

		switch t.Status() {
		case model.TaskStatusPending:
			buckets.Pending = append(buckets.Pending, t)
		case model.TaskStatusInProgress:
			buckets.InProgress = append(buckets.InProgress, t)
		case model.TaskStatusCompleted:
			buckets.Completed = append(buckets.Completed, t)
		}
	}

	return buckets
}
