package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/micropost/content-api/internal/api/middleware"
	"github.com/micropost/content-api/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Auth middleware
// and performs a fast-fail check before any service call: presence of the
// user proves the middleware ran on this route.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
