package handlers

import (
	"errors"

	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/service"
	apperrors "github.com/spec-kit/pos-service/pkg/util/errorutil"
)

// mapServiceError translates typed service outcomes into the HTTP error
// taxonomy. Everything unrecognized falls through to a 500.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return apperrors.NewConflict("email already registered", nil)
	case errors.Is(err, service.ErrUserNotFound):
		return apperrors.NewNotFound("user", nil)
	case errors.Is(err, service.ErrOrderNotFound):
		return apperrors.NewNotFound("order", nil)
	case errors.Is(err, service.ErrTableNotFound):
		return apperrors.NewNotFound("table", nil)
	case errors.Is(err, service.ErrMenuItemNotFound):
		return apperrors.NewNotFound("menu item", nil)
	case errors.Is(err, service.ErrNoWaitersAvailable):
		return apperrors.NewNotFound("available waiter", nil)
	case errors.Is(err, auth.ErrRateLimited):
		return apperrors.NewTooManyRequests("please wait before requesting another code")
	case errors.Is(err, auth.ErrInvalidToken):
		return apperrors.NewUnauthorized("invalid token")
	case errors.Is(err, service.ErrInvalidCredentials):
		return apperrors.NewUnauthorized("invalid credentials")
	case errors.Is(err, service.ErrAccountNotVerified),
		errors.Is(err, service.ErrAlreadyVerified),
		errors.Is(err, service.ErrInvalidVerificationCode),
		errors.Is(err, service.ErrInvalidOrderState),
		errors.Is(err, service.ErrTableOccupied),
		errors.Is(err, service.ErrTableHasUnpaid),
		errors.Is(err, service.ErrPaymentExceedsBalance):
		return apperrors.NewValidationError(err.Error(), nil)
	default:
		return apperrors.MapError(err)
	}
}
