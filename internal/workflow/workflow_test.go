package workflow

import (
	"context"
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestWorkflow(t *testing.T) {
	errFailure := errors.New("failure")
	errRollback := errors.New("rollback")

	type testCase struct {
		Name                 string
		Steps                func(trace *[]string) []Step
		ExpectedErr          error
		ExpectedCompensation bool
		ExpectedTrace        []string
	}

	testCases := []testCase{
		{
			Name: "all steps succeed",
			Steps: func(trace *[]string) []Step {
				return []Step{
					tracedStep(trace, "first", nil, nil),
					tracedStep(trace, "second", nil, nil),
				}
			},
			ExpectedTrace: []string{"execute first", "execute second"},
		},
		{
			Name: "completed steps are compensated in reverse order",
			Steps: func(trace *[]string) []Step {
				return []Step{
					tracedStep(trace, "first", nil, nil),
					tracedStep(trace, "second", nil, nil),
					tracedStep(trace, "third", errFailure, nil),
				}
			},
			ExpectedErr:   errFailure,
			ExpectedTrace: []string{"execute first", "execute second", "execute third", "compensate second", "compensate first"},
		},
		{
			Name: "compensation failure",
			Steps: func(trace *[]string) []Step {
				return []Step{
					tracedStep(trace, "first", nil, errRollback),
					tracedStep(trace, "second", errFailure, nil),
				}
			},
			ExpectedErr:          errFailure,
			ExpectedCompensation: true,
			ExpectedTrace:        []string{"execute first", "execute second", "compensate first"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			trace := make([]string, 0)

			err := New(tc.Steps(&trace)...).Execute(context.Background())

			if tc.ExpectedErr == nil && err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.ExpectedErr != nil && !errors.Is(err, tc.ExpectedErr) {
				t.Errorf("err: expected %v, got %+v", tc.ExpectedErr, err)
			}

			var compensationErr *CompensationError
			if e, g := tc.ExpectedCompensation, errors.As(err, &compensationErr); e != g {
				t.Errorf("compensation error: expected %v, got %v", e, g)
			}

			if e, g := tc.ExpectedTrace, trace; !slices.Equal(e, g) {
				t.Errorf("trace: expected %v, got %v", e, g)
			}
		})
	}
}

func tracedStep(trace *[]string, name string, executeErr error, compensateErr error) Step {
	return StepFunc(name,
		func(ctx context.Context) error {
			*trace = append(*trace, "execute "+name)
			return executeErr
		},
		func(ctx context.Context) error {
			*trace = append(*trace, "compensate "+name)
			return compensateErr
		},
	)
}
