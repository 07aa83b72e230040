package domain

import "errors"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenMissing = errors.New("token not found")

// User models the authenticated operator of the dashboard. It is immutable
// once fetched and replaced wholesale on re-fetch.
type User struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	Roles     []string `json:"roles"`
	Active    bool     `json:"active"`
	CreatedAt string   `json:"createdAt"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is what the inventory API returns on a successful login.
// Expires is the token lifetime in seconds.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	Expires     int64  `json:"expires"`
}

// Session pairs the authenticated user with the bearer token used to fetch
// it. Exactly one session exists per dashboard process.
type Session struct {
	User  *User
	Token string
}
