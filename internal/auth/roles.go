package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/repository"
	apperrors "github.com/spec-kit/pos-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// LoadPrincipal resolves the token subject to its user record and stores it
// for downstream handlers. Must run after a token gate.
func LoadPrincipal(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("missing token claims")
		}

		user, err := users.GetByID(c.UserContext(), claims.User.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUnauthorized("user not found")
			}
			return apperrors.MapError(err)
		}

		c.Locals(principalKey, user)
		return c.Next()
	}
}

// RequireRole ensures the principal carries one of the allowed role tags.
// With no arguments any authenticated principal passes.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// PrincipalFromContext retrieves the authenticated user record.
func PrincipalFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.User)
	return principal, ok
}
