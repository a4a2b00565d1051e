package workflow

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

// Workflow executes its steps in order. When a step fails, the steps that
// already completed are compensated in reverse order.
type Workflow struct {
	steps []Step
}

func (w *Workflow) Execute(ctx context.Context) error {
	for idx, step := range w.steps {
		if executionErr := step.Execute(ctx); executionErr != nil {
			slog.DebugContext(ctx, "workflow step failed", slog.String("step", step.Name()), slogx.Error(executionErr))

			if compensationErrs := w.compensate(ctx, idx-1); compensationErrs != nil {
				return errors.WithStack(NewCompensationError(executionErr, compensationErrs...))
			}

			return errors.WithStack(executionErr)
		}
	}

	return nil
}

func (w *Workflow) compensate(ctx context.Context, fromIndex int) []error {
	// Compensations must run even if the caller gave up
	ctx = context.WithoutCancel(ctx)

	errs := make([]error, 0)
	for idx := fromIndex; idx >= 0; idx -= 1 {
		step := w.steps[idx]

		if err := step.Compensate(ctx); err != nil {
			slog.ErrorContext(ctx, "could not compensate workflow step", slog.String("step", step.Name()), slogx.Error(err))
			errs = append(errs, errors.WithStack(err))
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func New(steps ...Step) *Workflow {
	return &Workflow{steps: steps}
}
