package auth

import (
	"context"
	"testing"
	"time"

	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/diacare/identity-service/internal/domain/types"
	"github.com/diacare/identity-service/pkg/logger"
	"github.com/diacare/identity-service/pkg/passhash"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
)

func newTestTokenService(repo *fakeUserRepo, accessTTL, refreshTTL time.Duration) *TokenService {
	log := logger.InitLogger("test", logger.LevelError)
	return NewTokenService(testAccessSecret, testRefreshSecret, repo, fakeTxManager{}, accessTTL, refreshTTL, log)
}

func newTestUser(role string) *models.User {
	user := &models.User{
		ID:          uuid.New(),
		PhoneNumber: "0912345678",
		Role:        role,
		IsActive:    true,
	}
	return user
}

func TestGenerateAuthResponse(t *testing.T) {
	repo := newFakeUserRepo()
	user := newTestUser("PATIENT")
	repo.add(user)

	svc := newTestTokenService(repo, 15*time.Minute, 168*time.Hour)

	resp, err := svc.GenerateAuthResponse(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, "PATIENT", resp.Role)

	// The stored session secret must be a hash of the refresh token,
	// never the token itself.
	stored, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.True(t, stored.HasSession())
	assert.NotEqual(t, resp.RefreshToken, stored.GetSessionSecret())

	ok, err := passhash.VerifyPassword(resp.RefreshToken, stored.GetSessionSecret())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateAuthResponse_Claims(t *testing.T) {
	repo := newFakeUserRepo()
	user := newTestUser("DOCTOR")
	repo.add(user)

	svc := newTestTokenService(repo, 15*time.Minute, 168*time.Hour)

	resp, err := svc.GenerateAuthResponse(context.Background(), user)
	require.NoError(t, err)

	parse := func(token, secret string) jwt.MapClaims {
		parsed, err := jwt.ParseWithClaims(token, jwt.MapClaims{}, func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)
		return parsed.Claims.(jwt.MapClaims)
	}

	access := parse(resp.AccessToken, testAccessSecret)
	assert.Equal(t, user.ID.String(), access["sub"])
	assert.Equal(t, "DOCTOR", access["role"])

	refresh := parse(resp.RefreshToken, testRefreshSecret)
	assert.Equal(t, user.ID.String(), refresh["sub"])

	// Expiries reflect the configured TTLs.
	accessExp := time.Unix(int64(access["exp"].(float64)), 0)
	refreshExp := time.Unix(int64(refresh["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), accessExp, time.Minute)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), refreshExp, time.Minute)
}

func TestVerifyAccessToken(t *testing.T) {
	repo := newFakeUserRepo()
	user := newTestUser("PATIENT")
	repo.add(user)

	svc := newTestTokenService(repo, 15*time.Minute, 168*time.Hour)

	resp, err := svc.GenerateAuthResponse(context.Background(), user)
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "PATIENT", claims.Role)

	// A refresh token must not pass access verification: the secrets are
	// independent.
	_, err = svc.VerifyAccessToken(resp.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)

	_, err = svc.VerifyAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	repo := newFakeUserRepo()
	user := newTestUser("PATIENT")
	repo.add(user)

	svc := newTestTokenService(repo, -time.Minute, 168*time.Hour)

	resp, err := svc.GenerateAuthResponse(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestRefresh_RotatesTokenPair(t *testing.T) {
	repo := newFakeUserRepo()
	user := newTestUser("PATIENT")
	repo.add(user)

	svc := newTestTokenService(repo, 15*time.Minute, 168*time.Hour)

	first, err := svc.GenerateAuthResponse(context.Background(), user)
	require.NoError(t, err)

	// The refresh claims carry second-resolution timestamps; make sure the
	// rotated token differs from the presented one.
	time.Sleep(1100 * time.Millisecond)

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, second.RefreshToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The presented token was invalidated by the rotation.
	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, types.ErrRefreshTokenInvalid)

	// The new one still works.
	_, err = svc.Refresh(context.Background(), second.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_LoggedOutUser(t *testing.T) {
	repo := newFakeUserRepo()
	user := newTestUser("PATIENT")
	repo.add(user)

	svc := newTestTokenService(repo, 15*time.Minute, 168*time.Hour)

	resp, err := svc.GenerateAuthResponse(context.Background(), user)
	require.NoError(t, err)

	// Logout clears the stored session secret.
	require.NoError(t, repo.UpdateSessionSecret(context.Background(), user.ID, ""))

	_, err = svc.Refresh(context.Background(), resp.RefreshToken)
	assert.ErrorIs(t, err, types.ErrRefreshTokenInvalid)
}

func TestRefresh_ForgedToken(t *testing.T) {
	repo := newFakeUserRepo()
	user := newTestUser("PATIENT")
	repo.add(user)

	svc := newTestTokenService(repo, 15*time.Minute, 168*time.Hour)

	// Well-formed token signed with the wrong secret.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": "PATIENT",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), token)
	assert.ErrorIs(t, err, types.ErrRefreshTokenInvalid)
}

func TestRefresh_UnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestTokenService(repo, 15*time.Minute, 168*time.Hour)

	// Valid signature but the subject does not exist.
	ghost := newTestUser("PATIENT")
	token, err := svc.signClaims(ghost, time.Now().UTC(), time.Hour, testRefreshSecret)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), token)
	assert.ErrorIs(t, err, types.ErrRefreshTokenInvalid)
}
