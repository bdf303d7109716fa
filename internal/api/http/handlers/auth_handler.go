package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/service"
)

// AuthHandler exposes registration, verification and session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || len(req.Password) < 8 {
		return fiber.NewError(http.StatusBadRequest, "email and password (min 8 chars) required")
	}

	result, err := h.auth.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(http.StatusCreated).JSON(dto.RegisterResponse{
		ID:                result.UserID,
		Message:           "Verification email sent",
		VerificationToken: result.VerificationToken,
		TokenType:         "bearer",
	})
}

// VerifyEmail handles POST /auth/verify.
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Code == "" {
		return fiber.NewError(http.StatusBadRequest, "email and code required")
	}

	pair, err := h.auth.VerifyEmail(c.UserContext(), req.Email, req.Code)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	pair, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	})
}

// Refresh handles POST /auth/refresh. The refresh token travels in the body
// and is revocation-checked by the service.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.RefreshToken == "" {
		return fiber.NewError(http.StatusBadRequest, "refresh_token required")
	}

	pair, err := h.auth.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	})
}

// Logout handles POST /auth/logout behind the refresh-token gate.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing token claims")
	}

	if err := h.auth.Logout(c.UserContext(), claims); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(fiber.Map{"message": "Successfully logged out"})
}

// ResendVerification handles POST /auth/resend-verification behind the
// access-token gate; the resend-only registration token passes it.
func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing token claims")
	}

	if err := h.auth.ResendVerification(c.UserContext(), claims.User.ID); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(fiber.Map{"message": "Verification email resent successfully"})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing token claims")
	}

	user, err := h.auth.CurrentUser(c.UserContext(), claims.User.ID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(dto.UserProfileResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		Role:          string(user.Role),
		PhoneNumber:   user.PhoneNumber,
	})
}
