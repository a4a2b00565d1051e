package board

import (
	"github.com/bornholm/maven/internal/core/model"
)

// Gesture is a drag-and-drop interaction resolved to a source task and a
// target bucket. An empty TargetID means the task was dropped outside of
// any bucket.
type Gesture struct {
	SourceID model.TaskID
	TargetID string
}

// Intent is a validated status change, ready for persistence.
type Intent struct {
	TaskID    model.TaskID
	NewStatus model.TaskStatus
}

// ResolveIntent interprets a gesture against the given tasks. It returns
// false when the gesture must be ignored: no target, unknown target or
// source, or a target equal to the current status of the task.
func ResolveIntent(tasks []model.Task, gesture Gesture) (Intent, bool) {
	if gesture.TargetID == "" {
		return Intent{}, false
	}

	newStatus := model.TaskStatus(gesture.TargetID)
	if !newStatus.Valid() {
		return Intent{}, false
	}

	var source model.Task
	for _, t := range tasks {
		if t != nil && t.ID() == gesture.SourceID {
			source = t
			break
		}
	}

	if source == nil {
		return Intent{}, false
	}

	if source.Status() == newStatus {
		return Intent{}, false
	}

	return Intent{
		TaskID:    source.ID(),
		NewStatus: newStatus,
	}, true
}
