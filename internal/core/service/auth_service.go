package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
	"github.com/naiconmartins/autoflex-production-control/internal/core/ports"
	"github.com/naiconmartins/autoflex-production-control/internal/state"
)

// LoginData is what a successful login hands back to the caller: the token
// envelope (the host needs the declared expiry for the cookie) and the user
// fetched with it.
type LoginData struct {
	Auth *domain.AuthResponse
	User *domain.User
}

// AuthService orchestrates login, logout, and session restoration. It owns
// the session container and clears every other container on logout.
type AuthService struct {
	gw       ports.AuthGateway
	stores   *state.Stores
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthService(gw ports.AuthGateway, stores *state.Stores, log zerolog.Logger) *AuthService {
	return &AuthService{
		gw:       gw,
		stores:   stores,
		validate: newValidator(),
		log:      log,
	}
}

// Login exchanges credentials for a token, fetches the user behind it, and
// installs both as the session. On failure the session container carries the
// mapped message and no user.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) ActionResult[LoginData] {
	const action = "login"

	if fields := checkInput(s.validate, creds); fields != nil {
		res := invalid[LoginData](action, msgInvalidFields, fields)
		s.stores.Session.SetError(res.Error)
		return res
	}

	s.stores.Session.SetLoading(true)

	auth, err := s.gw.Login(ctx, creds)
	if err != nil {
		res := fail[LoginData](action, err)
		s.stores.Session.SetError(res.Error)
		return res
	}

	user, err := s.gw.AuthenticatedUser(ctx, auth.AccessToken)
	if err != nil {
		res := fail[LoginData](action, err)
		s.stores.Session.SetError(res.Error)
		return res
	}

	s.stores.Session.Set(user, auth.AccessToken)
	s.log.Info().Str("email", user.Email).Msg("login succeeded")
	return ok(action, LoginData{Auth: auth, User: user})
}

// Logout drops the session and resets every resource container so nothing
// from the previous operator's view survives.
func (s *AuthService) Logout(ctx context.Context) ActionResult[struct{}] {
	const action = "logout"

	s.stores.Session.Clear()
	s.stores.RawMaterials.Clear()
	s.stores.Products.Clear()
	s.stores.Capacity.Clear()

	return ok(action, struct{}{})
}

// Restore probes the who-am-I endpoint with a stored token. Success installs
// the session; any failure — auth rejection or network — clears it, which
// the UI layer turns into a redirect to the login entry point.
func (s *AuthService) Restore(ctx context.Context, token string) ActionResult[*domain.User] {
	const action = "session_restore"

	if token == "" {
		s.stores.Session.Clear()
		return failTokenMissing[*domain.User](action)
	}

	s.stores.Session.SetLoading(true)

	user, err := s.gw.AuthenticatedUser(ctx, token)
	if err != nil {
		s.stores.Session.Clear()
		return fail[*domain.User](action, err)
	}

	s.stores.Session.Set(user, token)
	return ok(action, user)
}
