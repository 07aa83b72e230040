package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/naiconmartins/autoflex-production-control/internal/api/metrics"
	"github.com/naiconmartins/autoflex-production-control/internal/api/middleware"
	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
	"github.com/naiconmartins/autoflex-production-control/internal/core/ports"
	"github.com/naiconmartins/autoflex-production-control/internal/core/service"
	"github.com/naiconmartins/autoflex-production-control/internal/session"
	"github.com/naiconmartins/autoflex-production-control/internal/transport"
)

// AuthHandler serves the host's session surface: login, logout, and the
// who-am-I check the browser runs on every page load.
type AuthHandler struct {
	auth   *service.AuthService
	gw     ports.AuthGateway
	cache  ports.UserCache
	secure bool
	log    zerolog.Logger
}

// NewAuthHandler wires the session surface. cache may be nil, in which case
// every session check probes the upstream.
func NewAuthHandler(auth *service.AuthService, gw ports.AuthGateway, cache ports.UserCache, secure bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, gw: gw, cache: cache, secure: secure, log: log}
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type actionFailure struct {
	Success     bool                `json:"success"`
	Status      int                 `json:"status"`
	Error       string              `json:"error"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// Login authenticates against the inventory API, sets the credential cookie,
// and returns the signed-in user. Failures come back as the orchestrator's
// result envelope so the form can attach field-level messages.
func (h *AuthHandler) Login(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	res := h.auth.Login(c.Request().Context(), creds)
	if !res.Success {
		return c.JSON(responseStatus(res.Status), actionFailure{
			Status:      res.Status,
			Error:       res.Error,
			FieldErrors: res.FieldErrors,
		})
	}

	c.SetCookie(session.NewTokenCookie(res.Data.Auth, h.secure))
	return c.JSON(http.StatusOK, loginResponse{
		User:  res.Data.User,
		Token: res.Data.Auth.AccessToken,
	})
}

// Logout clears the session, the cached user lookup, and the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if token, ok := session.TokenFromRequest(c.Request()); ok && h.cache != nil {
		if err := h.cache.Invalidate(ctx, token); err != nil {
			h.log.Warn().Err(err).Msg("session cache invalidate failed")
		}
	}

	h.auth.Logout(ctx)
	c.SetCookie(session.ExpiredTokenCookie(h.secure))
	return c.NoContent(http.StatusNoContent)
}

// Me answers the browser's session probe: the authenticated user as JSON, or
// an error envelope carrying the upstream's mapped status. Cached answers are
// served for a short TTL to absorb rapid page loads.
func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.Token(c)

	if h.cache != nil {
		user, hit, err := h.cache.Get(ctx, token)
		if err != nil {
			h.log.Warn().Err(err).Msg("session cache lookup failed")
		}
		if hit {
			metrics.SessionCacheTotal.WithLabelValues("hit").Inc()
			return c.JSON(http.StatusOK, user)
		}
	}
	metrics.SessionCacheTotal.WithLabelValues("miss").Inc()

	user, err := h.gw.AuthenticatedUser(ctx, token)
	if err != nil {
		apiErr := transport.AsAPIError(err)
		h.log.Debug().Int("status", apiErr.Status).Msg("session probe rejected")
		return c.JSON(responseStatus(apiErr.Status), map[string]string{
			"error": transport.ToUserMessage(apiErr),
		})
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, token, user); err != nil {
			h.log.Warn().Err(err).Msg("session cache store failed")
		}
	}
	return c.JSON(http.StatusOK, user)
}

// responseStatus turns an orchestrator/upstream status into a valid HTTP
// answer: 0 (network failure) becomes 502, anything outside the error range
// becomes 500.
func responseStatus(status int) int {
	if status >= 400 && status < 600 {
		return status
	}
	if status == 0 {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
