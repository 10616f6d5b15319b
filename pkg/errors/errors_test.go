package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_HTTPStatus(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    int
	}{
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeUnavailable, http.StatusServiceUnavailable},
		{ErrorTypeExternal, http.StatusBadGateway},
		{ErrorTypeInternal, http.StatusInternalServerError},
		{ErrorType("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errType.HTTPStatus())
		})
	}
}

func TestTypeOf_FindsWrappedAppError(t *testing.T) {
	err := fmt.Errorf("aggregate: %w", NewNotFoundError("no places"))
	assert.Equal(t, ErrorTypeNotFound, TypeOf(err))
	assert.Equal(t, ErrorTypeInternal, TypeOf(errors.New("boom")))
}

func TestNewNotFoundErrorWithCause_KeepsCause(t *testing.T) {
	cause := errors.New("no matches")
	err := NewNotFoundErrorWithCause("No places matched", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "NOT_FOUND: No places matched: no matches", err.Error())
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "intensity must be at least 1", PublicMessage(NewValidationError("intensity must be at least 1")))
	assert.Equal(t, "internal server error", PublicMessage(errors.New("db password is hunter2")))
	assert.Equal(t, "internal server error", PublicMessage(&AppError{Type: ErrorTypeInternal, Message: "secret detail"}))
}
