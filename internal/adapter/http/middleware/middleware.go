package middleware

import (
	"context"

	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/diacare/identity-service/pkg/logger"
)

type (
	// AuthService verifies an access token and loads the account it belongs to.
	AuthService interface {
		VerifyAccess(ctx context.Context, token string) (*models.User, error)
	}

	Middleware struct {
		auth AuthService
		log  logger.Logger
	}
)

func NewMiddleware(auth AuthService, log logger.Logger) *Middleware {
	return &Middleware{
		auth: auth,
		log:  log,
	}
}
