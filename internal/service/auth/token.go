package auth

import (
	"context"
	"errors"
	"time"

	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/diacare/identity-service/internal/domain/types"
	"github.com/diacare/identity-service/pkg/logger"
	wrap "github.com/diacare/identity-service/pkg/logger/wrapper"
	"github.com/diacare/identity-service/pkg/passhash"
	"github.com/diacare/identity-service/pkg/trm"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// TokenService issues and verifies the access/refresh token pair. Access and
// refresh tokens are signed with independent secrets so a leaked access secret
// cannot be used to mint refresh tokens.
type TokenService struct {
	userRepo      UserRepo
	txManager     trm.TxManager
	accessSecret  string
	refreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	log           logger.Logger
}

func NewTokenService(
	accessSecret, refreshSecret string,
	userRepo UserRepo,
	txManager trm.TxManager,
	accessTTL, refreshTTL time.Duration,
	log logger.Logger,
) *TokenService {
	return &TokenService{
		userRepo:      userRepo,
		txManager:     txManager,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
		log:           log,
	}
}

// GenerateAuthResponse signs an access and a refresh token for the user,
// persists the argon2id hash of the refresh token as the user's session
// secret, and returns the pair. The two tokens are signed concurrently; the
// single storage write happens only after both succeed, so a signing failure
// never mutates the stored session.
func (s *TokenService) GenerateAuthResponse(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	ctx = wrap.WithAction(ctx, "generate_auth_response")
	if user == nil {
		return nil, wrap.Error(ctx, errors.New("user is nil"))
	}

	issuedAt := time.Now().UTC()

	var accessToken, refreshToken string
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		accessToken, err = s.signClaims(user, issuedAt, s.AccessTTL, s.accessSecret)
		return err
	})
	g.Go(func() error {
		var err error
		refreshToken, err = s.signClaims(user, issuedAt, s.RefreshTTL, s.refreshSecret)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrap.Error(ctx, ErrTokenGenerateFail)
	}

	secret, err := passhash.HashPassword(refreshToken)
	if err != nil {
		s.log.Error(ctx, "failed to hash refresh token", err)
		return nil, wrap.Error(ctx, ErrTokenGenerateFail)
	}

	// Overwrites any previous session secret: one active refresh token per
	// user, last write wins.
	if err := s.userRepo.UpdateSessionSecret(ctx, user.ID, secret); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return &models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		Role:         user.Role,
	}, nil
}

// Refresh rotates the token pair. It verifies the presented refresh token's
// signature and expiry, compares it against the stored session secret, and on
// success mints a new pair whose persistence invalidates the presented token.
// The whole compare-and-rotate sequence runs in one transaction.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	ctx = wrap.WithAction(ctx, "refresh_tokens")

	claims, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, wrap.Error(ctx, types.ErrRefreshTokenInvalid)
	}

	var response *models.AuthResponse

	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, claims.UserID)
		if err != nil {
			return err
		}

		// Absent user, logged-out user, and hash mismatch all collapse into
		// the same caller-facing failure.
		if user == nil || !user.HasSession() {
			return types.ErrRefreshTokenInvalid
		}

		ok, err := passhash.VerifyPassword(refreshToken, user.GetSessionSecret())
		if err != nil || !ok {
			return types.ErrRefreshTokenInvalid
		}

		response, err = s.GenerateAuthResponse(txCtx, user)
		return err
	})
	if txErr != nil {
		return nil, wrap.Error(ctx, txErr)
	}

	return response, nil
}

// VerifyAccessToken validates signature and expiry against the access secret.
func (s *TokenService) VerifyAccessToken(token string) (*models.TokenClaims, error) {
	claims, err := s.verify(token, s.accessSecret)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}
	return claims, nil
}

// VerifyRefreshToken validates signature and expiry against the refresh
// secret. Malformed, forged, and expired tokens are indistinguishable to the
// caller.
func (s *TokenService) VerifyRefreshToken(token string) (*models.TokenClaims, error) {
	claims, err := s.verify(token, s.refreshSecret)
	if err != nil {
		return nil, types.ErrRefreshTokenInvalid
	}
	return claims, nil
}

func (s *TokenService) verify(token, secret string) (*models.TokenClaims, error) {
	parsedToken, err := jwt.ParseWithClaims(token, jwt.MapClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	mc, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sub, _ := mc["sub"].(string)
	if sub == "" {
		return nil, errors.New("missing 'sub' in token claims")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid 'sub' in token claims")
	}

	role, _ := mc["role"].(string)
	if !types.ValidRole(role) {
		return nil, errors.New("invalid 'role' in token claims")
	}

	expFloat, ok := mc["exp"].(float64)
	if !ok {
		return nil, errors.New("missing 'exp' in token claims")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().UTC().After(expTime) {
		return nil, errors.New("expired token")
	}

	return &models.TokenClaims{
		UserID:    userID,
		Role:      role,
		ExpiresAt: expTime,
	}, nil
}

func (s *TokenService) signClaims(user *models.User, issuedAt time.Time, ttl time.Duration, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
