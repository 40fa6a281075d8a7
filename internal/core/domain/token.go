package domain

import (
	"github.com/google/uuid"
)

// TokenPair is the access+refresh bundle issued at login and refresh. It is
// never persisted; validity lives entirely inside the signed tokens.
type TokenPair struct {
	UserID                     uuid.UUID `json:"user_id"`
	AccessToken                string    `json:"access_token"`
	AccessTokenExpiresMinutes  int       `json:"access_token_expires_minutes"`
	RefreshToken               string    `json:"refresh_token"`
	RefreshTokenExpiresMinutes int       `json:"refresh_token_expires_minutes"`
}

// TokenPayload is the decoded content of a verified access token.
type TokenPayload struct {
	UserID uuid.UUID
	Scopes []string
}
