package service

import "errors"

// Typed outcomes returned by services. Handlers map these to HTTP; nothing
// below the service layer decides HTTP semantics.
var (
	ErrEmailTaken              = errors.New("email already registered")
	ErrUserNotFound            = errors.New("user not found")
	ErrAccountNotVerified      = errors.New("account email not verified")
	ErrAlreadyVerified         = errors.New("account email already verified")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidVerificationCode = errors.New("invalid or expired verification code")

	ErrNoWaitersAvailable = errors.New("no waiters available")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderState  = errors.New("order is not in a valid state for this action")

	ErrTableNotFound    = errors.New("table not found")
	ErrTableOccupied    = errors.New("table is already occupied")
	ErrTableHasUnpaid   = errors.New("table has unpaid orders")
	ErrMenuItemNotFound = errors.New("menu item not found")

	ErrPaymentExceedsBalance = errors.New("payment amount exceeds remaining balance")
)
