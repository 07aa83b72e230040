package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

func TestNewTokenCookie_DeclaredExpiry(t *testing.T) {
	c := NewTokenCookie(&domain.AuthResponse{AccessToken: "tok-1", Expires: 3600}, true)

	if c.Name != CookieName || c.Value != "tok-1" {
		t.Fatalf("unexpected cookie: %+v", c)
	}
	if c.MaxAge != 3600 {
		t.Fatalf("expected max-age 3600, got %d", c.MaxAge)
	}
	if c.Path != "/" || c.SameSite != http.SameSiteLaxMode || !c.Secure {
		t.Fatalf("unexpected attributes: %+v", c)
	}
}

func TestNewTokenCookie_ExpiryFromClaim(t *testing.T) {
	token := signedToken(t, time.Now().Add(2*time.Hour))

	c := NewTokenCookie(&domain.AuthResponse{AccessToken: token}, false)
	if c.MaxAge <= 0 || c.MaxAge > int((2*time.Hour).Seconds()) {
		t.Fatalf("max-age should come from the exp claim, got %d", c.MaxAge)
	}
	if c.Secure {
		t.Fatalf("secure must be off outside production")
	}
}

func TestNewTokenCookie_Fallback(t *testing.T) {
	// Opaque token, no declared expiry: the default applies.
	c := NewTokenCookie(&domain.AuthResponse{AccessToken: "not-a-jwt"}, false)
	if c.MaxAge != int(defaultMaxAge.Seconds()) {
		t.Fatalf("expected default max-age, got %d", c.MaxAge)
	}

	// Already-expired claim also falls back.
	expired := signedToken(t, time.Now().Add(-time.Hour))
	c = NewTokenCookie(&domain.AuthResponse{AccessToken: expired}, false)
	if c.MaxAge != int(defaultMaxAge.Seconds()) {
		t.Fatalf("expired claim must fall back to the default, got %d", c.MaxAge)
	}
}

func TestExpiredTokenCookie(t *testing.T) {
	c := ExpiredTokenCookie(true)
	if c.MaxAge != -1 || c.Value != "" || c.Path != "/" {
		t.Fatalf("unexpected logout cookie: %+v", c)
	}
}

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if _, ok := TokenFromRequest(req); ok {
		t.Fatalf("no cookie must mean no token")
	}

	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok-5"})
	token, ok := TokenFromRequest(req)
	if !ok || token != "tok-5" {
		t.Fatalf("expected tok-5, got %q %v", token, ok)
	}

	empty := httptest.NewRequest(http.MethodGet, "/", nil)
	empty.AddCookie(&http.Cookie{Name: CookieName, Value: ""})
	if _, ok := TokenFromRequest(empty); ok {
		t.Fatalf("empty cookie value must mean no token")
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"exp": exp.Unix(), "email": "ana@example.com"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
