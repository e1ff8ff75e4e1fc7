package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"testing"

	"task-viewer/internal/errors"

	"github.com/stretchr/testify/assert"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestHandleDatabaseError(t *testing.T) {
	originalErr := stderrors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.True(t, errors.IsErrorType(result, errors.ErrorTypeDatabase))
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
}

func TestHandleDatabaseError_Deadline(t *testing.T) {
	result := HandleDatabaseError("get key", fmt.Errorf("query: %w", context.DeadlineExceeded))

	assert.True(t, errors.IsErrorType(result, errors.ErrorTypeTimeout))
}

func TestHandleNoRowsError(t *testing.T) {
	tests := []struct {
		name           string
		inputErr       error
		expectNotFound bool
	}{
		{
			name:           "ErrNoRows should return NotFoundError",
			inputErr:       sql.ErrNoRows,
			expectNotFound: true,
		},
		{
			name:           "Other error should return as-is",
			inputErr:       stderrors.New("some other error"),
			expectNotFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HandleNoRowsError(tt.inputErr, "key", "theme")

			if tt.expectNotFound {
				assert.True(t, errors.IsNotFound(result))
				assert.Contains(t, result.Error(), "key not found: theme")
			} else {
				assert.Equal(t, tt.inputErr, result)
			}
		})
	}
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name      string
		result    sql.Result
		expectErr func(t *testing.T, err error)
	}{
		{
			name:   "one row affected",
			result: &MockResult{rowsAffected: 1},
			expectErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "no rows affected",
			result: &MockResult{rowsAffected: 0},
			expectErr: func(t *testing.T, err error) {
				assert.True(t, errors.IsNotFound(err))
			},
		},
		{
			name:   "rows affected error",
			result: &MockResult{rowsErr: stderrors.New("driver")},
			expectErr: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expectErr(t, ValidateRowsAffected(tt.result, "key", "theme"))
		})
	}
}
