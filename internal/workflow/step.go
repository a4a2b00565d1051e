package workflow

import "context"

type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

type step struct {
	name       string
	execute    func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// Name implements Step.
func (s *step) Name() string {
	return s.name
}

// Compensate implements Step.
func (s *step) Compensate(ctx context.Context) error {
	if s.compensate == nil {
		return nil
	}

	return s.compensate(ctx)
}

// Execute implements Step.
func (s *step) Execute(ctx context.Context) error {
	if s.execute == nil {
		return nil
	}

	return s.execute(ctx)
}

var _ Step = &step{}

// StepFunc creates a named step. A nil compensate function means the step
// has nothing to undo.
func StepFunc(name string, execute func(ctx context.Context) error, compensate func(ctx context.Context) error) Step {
	return &step{
		name:       name,
		execute:    execute,
		compensate: compensate,
	}
}
