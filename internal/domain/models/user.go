package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the credential-bearing account row. The password hash and session
// secret are unexported so they never leak through JSON marshalling.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`

	passwordHash  string
	sessionSecret string
}

func (u *User) GetPasswordHash() string {
	return u.passwordHash
}

func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = hash
}

// GetSessionSecret returns the stored hash of the currently valid refresh
// token. Empty means the user is logged out.
func (u *User) GetSessionSecret() string {
	return u.sessionSecret
}

func (u *User) SetSessionSecret(hash string) {
	u.sessionSecret = hash
}

// HasSession reports whether a refresh token hash is stored for the user.
func (u *User) HasSession() bool {
	return u.sessionSecret != ""
}

// AnonymousUser represents an unauthenticated request.
func AnonymousUser() *User {
	return &User{}
}

func (u *User) IsAnonymous() bool {
	return u.ID == uuid.Nil
}

type userCtxKey struct{}

var userKey = userCtxKey{}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user, or nil when absent.
func UserFromContext(ctx context.Context) *User {
	user, ok := ctx.Value(userKey).(*User)
	if !ok {
		return nil
	}
	return user
}
