package board

import (
	"testing"

	"github.com/bornholm/maven/internal/core/model"
)

func TestResolveIntent(t *testing.T) {
	tasks := []model.Task{
		model.NewTask("1", "Write copy", model.WithTaskStatus(model.TaskStatusPending)),
		model.NewTask("2", "Ship landing", model.WithTaskStatus(model.TaskStatusInProgress)),
	}

	type testCase struct {
		Name           string
		Gesture        Gesture
		ExpectedOK     bool
		ExpectedIntent Intent
	}

	testCases := []testCase{
		{
			Name:           "move to another bucket",
			Gesture:        Gesture{SourceID: "1", TargetID: "in-progress"},
			ExpectedOK:     true,
			ExpectedIntent: Intent{TaskID: "1", NewStatus: model.TaskStatusInProgress},
		},
		{
			Name:       "drop outside of any bucket",
			Gesture:    Gesture{SourceID: "1", TargetID: ""},
			ExpectedOK: false,
		},
		{
			Name:       "drop on current bucket",
			Gesture:    Gesture{SourceID: "2", TargetID: "in-progress"},
			ExpectedOK: false,
		},
		{
			Name:       "unknown target",
			Gesture:    Gesture{SourceID: "1", TargetID: "archived"},
			ExpectedOK: false,
		},
		{
			Name:       "unknown source",
			Gesture:    Gesture{SourceID: "42", TargetID: "completed"},
			ExpectedOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			intent, ok := ResolveIntent(tasks, tc.Gesture)

			if e, g := tc.ExpectedOK, ok; e != g {
				t.Fatalf("ok: expected %v, got %v", e, g)
			}

			if e, g := tc.ExpectedIntent, intent; e != g {
				t.Errorf("intent: expected %+v, got %+v", e, g)
			}
		})
	}
}
