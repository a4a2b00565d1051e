package workflow

import (
	"strconv"
	"strings"
)

// CompensationError is returned when a failed workflow could not be fully
// rolled back.
type CompensationError struct {
	executionErr     error
	compensationErrs []error
}

func (e *CompensationError) ExecutionError() error {
	return e.executionErr
}

func (e *CompensationError) CompensationErrors() []error {
	return e.compensationErrs
}

// Unwrap exposes the execution error, so that callers can still match it
// with errors.Is.
func (e *CompensationError) Unwrap() error {
	return e.executionErr
}

func (e *CompensationError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.executionErr.Error())
	sb.WriteString(" (rollback failed: ")

	for idx, err := range e.compensationErrs {
		if idx > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString("#")
		sb.WriteString(strconv.Itoa(idx))
		sb.WriteString(" ")
		sb.WriteString(err.Error())
	}

	sb.WriteString(")")

	return sb.String()
}

func NewCompensationError(executionErr error, compensationErrs ...error) *CompensationError {
	return &CompensationError{
		executionErr:     executionErr,
		compensationErrs: compensationErrs,
	}
}

var _ error = &CompensationError{}
