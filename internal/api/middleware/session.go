package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/naiconmartins/autoflex-production-control/internal/session"
)

const tokenKey = "token"

// Session extracts the credential cookie and injects the token into the
// request context. Requests without a cookie are rejected before the handler
// runs.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := session.TokenFromRequest(c.Request())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token")
			}
			c.Set(tokenKey, token)
			return next(c)
		}
	}
}

// Token returns the token injected by Session, or "" when the middleware did
// not run on this route.
func Token(c echo.Context) string {
	token, _ := c.Get(tokenKey).(string)
	return token
}
