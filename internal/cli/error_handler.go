package cli

import (
	stderrors "errors"
	"fmt"

	"task-viewer/internal/errors"
	"task-viewer/internal/logging"
	"task-viewer/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		logging.Debugf("%s failed: %s\n", operation, errors.Describe(err))
	}

	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	if errors.IsAppError(err) {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsNotFound(err)
}

// IsFetchError checks if an error came from the remote task source
func (eh *ErrorHandler) IsFetchError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeFetch) || errors.IsErrorType(err, errors.ErrorTypeTimeout)
}
