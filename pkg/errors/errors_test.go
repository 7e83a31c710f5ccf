package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "school-portal/pkg/errors"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{apperrors.NotFound("x"), apperrors.ErrNotFound},
		{apperrors.Unauthenticated("x"), apperrors.ErrUnauthenticated},
		{apperrors.Forbidden("x"), apperrors.ErrForbidden},
		{apperrors.BadRequest("x"), apperrors.ErrBadRequest},
		{apperrors.Conflict("x"), apperrors.ErrConflict},
		{apperrors.InvalidCredentials(), apperrors.ErrInvalidCredentials},
		{apperrors.NoPermissionConfigured("reports", "financial"), apperrors.ErrNoPermissionConfigured},
		{apperrors.RulesNotSatisfied("x"), apperrors.ErrRulesNotSatisfied},
	}

	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.sentinel)
	}
}

func TestStoreUnavailableKeepsCause(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := apperrors.StoreUnavailable("permission lookup failed", cause)

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "permission lookup failed")
}

func TestNoPermissionConfiguredNamesResource(t *testing.T) {
	err := apperrors.NoPermissionConfigured("start", "page")
	assert.Contains(t, err.Error(), "start/page")
}

func TestAppErrorUnwrap(t *testing.T) {
	var appErr *apperrors.AppError
	err := apperrors.NotFound("itinerary not found")

	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, "itinerary not found", appErr.Message)
}
