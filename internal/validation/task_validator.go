package validation

import (
	"strconv"

	apperrors "task-viewer/internal/errors"
)

// TaskValidator provides validation for task identifiers coming from user input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ParseTaskID converts a raw identifier (a URL segment or CLI argument) into
// a task ID. Anything that is not a positive integer cannot name a task, so
// it is reported as not found rather than as bad input.
func (tv *TaskValidator) ParseTaskID(raw string) (int64, error) {
	trimmed := tv.validator.TrimAndValidateString(raw)
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || !tv.validator.IsValidTaskID(id) {
		return 0, apperrors.NewNotFoundError("task", raw)
	}
	return id, nil
}

// ValidateTaskID validates an already-parsed task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		return apperrors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	return nil
}
