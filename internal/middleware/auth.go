package middleware

import (
	"strings"

	"github.com/Priyanshu-coder81/Backend-learning/internal/auth/domain"
	"github.com/Priyanshu-coder81/Backend-learning/internal/auth/service"
	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/response"
	"github.com/gofiber/fiber/v2"
)

// AccessTokenCookie is the cookie the login handler sets and this middleware
// reads when no Authorization header is present.
const AccessTokenCookie = "accessToken"

const userLocalsKey = "authenticatedUser"

// RequireAuth gates protected routes. It verifies the access token, resolves
// the user record (a deleted account with a still-valid token is rejected)
// and attaches the sanitized record to the request context. It performs no
// mutation and is safe ahead of any handler.
func RequireAuth(tokens service.TokenIssuer, users domain.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return response.Error(c, autherror.ErrUnauthenticated)
		}

		userID, err := tokens.Verify(tokenString, service.AccessToken)
		if err != nil {
			return response.Error(c, err)
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return response.Error(c, err)
		}
		if user == nil {
			return response.Error(c, autherror.ErrUnauthenticated)
		}

		c.Locals(userLocalsKey, user.Sanitized())

		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Cookies(AccessTokenCookie)
}

// CurrentUser returns the sanitized user attached by RequireAuth.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(userLocalsKey).(*domain.User)
	return user, ok
}
