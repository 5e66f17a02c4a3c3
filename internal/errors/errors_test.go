package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "work report"}
		assert.Equal(t, "work report not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "user"}
		err2 := &NotFoundError{Entity: "user"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrUserNotFound, ErrReportNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrReportNotFound))
		assert.False(t, IsNotFound(ErrInvalidResetToken))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("date", "must be YYYY-MM-DD")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrUserNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrReportModifyForbidden))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrReportModifyForbidden))
		assert.True(t, IsAuthorization(ErrAdminOnly))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("wrapped errors are still recognized", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), ErrReportModifyForbidden)
		assert.True(t, IsAuthorization(wrapped))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	assert.Error(t, ErrInvalidResetToken)
	assert.Error(t, ErrPasswordTooShort)
	assert.Error(t, ErrWrongPassword)
	assert.Error(t, ErrSelfPasswordReset)
	assert.Error(t, ErrUserNotInHierarchy)
}
