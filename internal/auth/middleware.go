package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/pos-service/pkg/util/errorutil"
)

const claimsKey = "auth_claims"

// TokenGate validates bearer tokens on protected routes. Each gate is
// stateless per request; the only shared state it consults is the
// revocation store.
type TokenGate struct {
	codec   *TokenCodec
	revoked *RevocationStore
}

// NewTokenGate constructs the gate.
func NewTokenGate(codec *TokenCodec, revoked *RevocationStore) *TokenGate {
	return &TokenGate{codec: codec, revoked: revoked}
}

// RequireAccess admits only access tokens.
func (g *TokenGate) RequireAccess() fiber.Handler {
	return g.handler(false)
}

// RequireRefresh admits only refresh tokens.
func (g *TokenGate) RequireRefresh() fiber.Handler {
	return g.handler(true)
}

func (g *TokenGate) handler(wantRefresh bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.NewUnauthorized("missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apperrors.NewUnauthorized("invalid authorization header")
		}

		claims, err := g.codec.Decode(parts[1])
		if err != nil {
			return apperrors.NewUnauthorized("invalid token")
		}

		revoked, err := g.revoked.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			return apperrors.MapError(err)
		}
		if revoked {
			return apperrors.NewUnauthorized("invalid token")
		}

		if wantRefresh && !claims.Refresh {
			return apperrors.NewUnauthorized("refresh token required")
		}
		if !wantRefresh && claims.Refresh {
			return apperrors.NewUnauthorized("access token required")
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromContext retrieves the decoded claims placed by a gate.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
