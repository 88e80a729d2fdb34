package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/micropost/content-api/internal/core/domain"
	"github.com/micropost/content-api/internal/core/ports"
)

// ContextUserKey is the echo context key under which Auth stores the
// authenticated *domain.User.
const ContextUserKey = "auth_user"

// Auth validates the bearer token, resolves the user it asserts, and injects
// the user into the request context. Every failure mode — missing header,
// malformed or expired token, unknown user id — yields 401. The lookup is
// read-only; a user deleted after token issuance is treated like a bad token.
func Auth(verifier ports.TokenVerifier, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := verifier.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token has expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
