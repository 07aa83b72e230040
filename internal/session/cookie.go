// Package session handles the dashboard's credential cookie and the
// once-per-load session restoration that runs before anything else renders.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// CookieName is the HTTP-readable credential cookie set on login.
const CookieName = "token"

// defaultMaxAge applies when neither the login response nor the token itself
// declares an expiry.
const defaultMaxAge = 24 * time.Hour

// NewTokenCookie builds the login cookie. MaxAge comes from the server's
// declared expiry, falling back to the token's own exp claim, then to
// defaultMaxAge. Secure is on in production deployments only, so local
// development over plain HTTP keeps working.
func NewTokenCookie(auth *domain.AuthResponse, secure bool) *http.Cookie {
	maxAge := int(defaultMaxAge.Seconds())
	if auth.Expires > 0 {
		maxAge = int(auth.Expires)
	} else if ttl, ok := tokenTTL(auth.AccessToken); ok {
		maxAge = int(ttl.Seconds())
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    auth.AccessToken,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredTokenCookie overwrites the credential cookie on logout.
func ExpiredTokenCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// TokenFromRequest extracts the credential cookie from an incoming request.
func TokenFromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// tokenTTL reads the exp claim without verifying the signature — the
// upstream API is the verifier; here the claim only sizes the cookie
// lifetime.
func tokenTTL(token string) (time.Duration, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return 0, false
	}
	return ttl, true
}
