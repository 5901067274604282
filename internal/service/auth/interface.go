package auth

import (
	"context"

	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/google/uuid"
)

type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	FindAdminByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
	FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	FindWithProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)

	// UpdateSessionSecret overwrites the stored refresh-token hash.
	// An empty hash clears it (logout).
	UpdateSessionSecret(ctx context.Context, userID uuid.UUID, hash string) error
}

type PatientRepo interface {
	Create(ctx context.Context, profile *models.PatientProfile) error
}

type DoctorRepo interface {
	Create(ctx context.Context, profile *models.DoctorProfile) error
	FindByLicense(ctx context.Context, licenseNumber string) (*models.DoctorProfile, error)
}

type TokenProvider interface {
	GenerateAuthResponse(ctx context.Context, user *models.User) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	VerifyAccessToken(token string) (*models.TokenClaims, error)
	VerifyRefreshToken(token string) (*models.TokenClaims, error)
}
