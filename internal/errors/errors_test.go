package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := NewValidationError("assignee set is empty", cause)

	assert.True(t, err.IsType(ErrorTypeValidation))
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Contains(t, err.Error(), "assignee set is empty")
	assert.Equal(t, cause, err.Unwrap())
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "abc-123")

	assert.True(t, err.IsType(ErrorTypeNotFound))
	assert.Contains(t, err.Error(), "task not found: abc-123")

	resource, ok := err.GetContext("resource")
	require.True(t, ok)
	assert.Equal(t, "task", resource)
}

func TestNewPermissionError(t *testing.T) {
	err := NewPermissionError("transition status", "b@example.com")

	assert.True(t, err.IsType(ErrorTypePermission))
	assert.Contains(t, err.Error(), "b@example.com")
	assert.Equal(t, "PERMISSION_DENIED", err.Code)
}

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("task", "abc-123", "status changed concurrently")

	assert.True(t, err.IsType(ErrorTypeConflict))
	assert.Equal(t, "CONFLICT", err.Code)
	assert.Contains(t, err.Error(), "status changed concurrently")
}

func TestNewDependencyError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewDependencyError("directory", cause)

	assert.True(t, err.IsType(ErrorTypeDependency))
	assert.Equal(t, "DEPENDENCY_UNAVAILABLE", err.Code)
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsErrorType(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType ErrorType
		expected  bool
	}{
		{
			name:      "matching type",
			err:       NewConflictError("task", "1", "stale status"),
			errorType: ErrorTypeConflict,
			expected:  true,
		},
		{
			name:      "non-matching type",
			err:       NewNotFoundError("task", "1"),
			errorType: ErrorTypeConflict,
			expected:  false,
		},
		{
			name:      "wrapped app error",
			err:       fmt.Errorf("outer: %w", NewPermissionError("delete", "x@y.com")),
			errorType: ErrorTypePermission,
			expected:  true,
		},
		{
			name:      "plain error",
			err:       fmt.Errorf("plain"),
			errorType: ErrorTypeValidation,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsErrorType(tt.err, tt.errorType))
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "validation message surfaced verbatim",
			err:      NewValidationError("title is required", nil),
			contains: "title is required",
		},
		{
			name:     "permission message surfaced verbatim",
			err:      NewPermissionError("transition status", "a@x.com"),
			contains: "permission denied",
		},
		{
			name:     "conflict message surfaced verbatim",
			err:      NewConflictError("task", "1", "stale status"),
			contains: "conflicting update",
		},
		{
			name:     "database message masked",
			err:      NewDatabaseError("insert task", fmt.Errorf("disk full")),
			contains: "database error occurred",
		},
		{
			name:     "dependency message masked",
			err:      NewDependencyError("notification sink", fmt.Errorf("timeout")),
			contains: "service is unavailable",
		},
		{
			name:     "plain error passed through",
			err:      fmt.Errorf("something odd"),
			contains: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetUserMessage(tt.err), tt.contains)
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
	assert.False(t, ShouldLogError(NewPermissionError("delete", "a@x.com")))
	assert.False(t, ShouldLogError(NewConflictError("task", "1", "stale")))
	assert.True(t, ShouldLogError(NewDatabaseError("query", nil)))
	assert.True(t, ShouldLogError(NewDependencyError("sink", nil)))
	assert.True(t, ShouldLogError(fmt.Errorf("unknown")))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewValidationError("bad input", nil).WithContext("field", "title")

	value, ok := err.GetContext("field")
	require.True(t, ok)
	assert.Equal(t, "title", value)
}
