package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/service"
	apperrors "github.com/spec-kit/pos-service/pkg/util/errorutil"
)

func TestMapServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"email taken", service.ErrEmailTaken, http.StatusConflict, "CONFLICT"},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"order not found", service.ErrOrderNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"table not found", service.ErrTableNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"menu item not found", service.ErrMenuItemNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"no waiters", service.ErrNoWaitersAvailable, http.StatusNotFound, "NOT_FOUND"},
		{"rate limited", auth.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"not verified", service.ErrAccountNotVerified, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"already verified", service.ErrAlreadyVerified, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"wrong code", service.ErrInvalidVerificationCode, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"bad order state", service.ErrInvalidOrderState, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"table occupied", service.ErrTableOccupied, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"table unpaid", service.ErrTableHasUnpaid, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"overpayment", service.ErrPaymentExceedsBalance, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := apperrors.ToDomainError(mapServiceError(tc.err))
			require.Equal(t, tc.status, mapped.HTTPStatus)
			require.Equal(t, tc.code, mapped.Code)
		})
	}
}
