package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthResponse is returned on successful login and on every refresh rotation.
type AuthResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	UserID       uuid.UUID `json:"userId"`
	Role         string    `json:"role"`
}

// TokenClaims are the verified claims extracted from a token: subject (user
// id) and role.
type TokenClaims struct {
	UserID    uuid.UUID
	Role      string
	ExpiresAt time.Time
}
