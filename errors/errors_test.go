package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("original error")
				return Wrap(DatabaseError, "database operation failed", cause)
			},
			expected: "DATABASE_ERROR: database operation failed (caused by: original error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")
	err := Wrap(ExternalAPIError, "API call failed", cause)
	assert.Equal(t, cause, err.Unwrap())

	withoutCause := New(NotFoundError, "resource not found")
	assert.Nil(t, withoutCause.Unwrap())
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		err          *AppError
		expectedType ErrorType
	}{
		{"Validation", NewValidationError("bad input"), ValidationError},
		{"NotFound", NewNotFoundError("missing"), NotFoundError},
		{"AlreadyExists", NewAlreadyExistsError("duplicate"), AlreadyExistsError},
		{"Database", NewDatabaseError("db failed", nil), DatabaseError},
		{"ExternalAPI", NewExternalAPIError("api failed", nil), ExternalAPIError},
		{"Email", NewEmailError("email failed", nil), EmailError},
		{"Configuration", NewConfigurationError("config failed", nil), ConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedType, tt.err.Type)
		})
	}
}
