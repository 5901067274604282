package auth

import (
	"context"

	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/diacare/identity-service/internal/domain/types"
	"github.com/diacare/identity-service/pkg/logger"
	wrap "github.com/diacare/identity-service/pkg/logger/wrapper"
	"github.com/diacare/identity-service/pkg/passhash"
	"github.com/diacare/identity-service/pkg/postgres"
	"github.com/diacare/identity-service/pkg/trm"
	"github.com/google/uuid"
)

// AuthService composes the credential store, password hasher and token
// service into the login, refresh, logout and registration flows.
type AuthService struct {
	userRepo     UserRepo
	patientRepo  PatientRepo
	doctorRepo   DoctorRepo
	tokenService TokenProvider
	txManager    trm.TxManager
	log          logger.Logger
}

func NewAuthService(
	userRepo UserRepo,
	patientRepo PatientRepo,
	doctorRepo DoctorRepo,
	tokenService TokenProvider,
	txManager trm.TxManager,
	log logger.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		tokenService: tokenService,
		txManager:    txManager,
		log:          log,
	}
}

// LoginAdmin authenticates an admin by email and password.
//
// Unknown email and wrong password intentionally produce distinct messages,
// matching the long-standing behavior of the public API.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	ctx = wrap.WithAction(ctx, "login_admin")

	user, err := s.userRepo.FindAdminByEmail(ctx, email)
	if err != nil {
		s.log.Error(ctx, "failed to look up admin account", err)
		return nil, wrap.Error(ctx, ErrUnexpected)
	}
	if user == nil {
		return nil, wrap.Error(ctx, types.ErrAdminNotFound)
	}
	if !user.IsActive {
		return nil, wrap.Error(ctx, types.ErrAccountDisabled)
	}

	if ok, err := passhash.VerifyPassword(password, user.GetPasswordHash()); err != nil || !ok {
		return nil, wrap.Error(ctx, types.ErrIncorrectPassword)
	}

	return s.issue(ctx, user)
}

// LoginUser authenticates a doctor or patient by phone number and password.
// Admin accounts are rejected before the password is checked (role gate).
func (s *AuthService) LoginUser(ctx context.Context, phoneNumber, password string) (*models.AuthResponse, error) {
	ctx = wrap.WithAction(ctx, "login_user")

	user, err := s.userRepo.FindByPhone(ctx, phoneNumber)
	if err != nil {
		s.log.Error(ctx, "failed to look up user by phone number", err)
		return nil, wrap.Error(ctx, ErrUnexpected)
	}
	if user == nil {
		return nil, wrap.Error(ctx, types.ErrPhoneNotRegistered)
	}

	if user.Role == types.AdminRole.String() {
		return nil, wrap.Error(ctx, types.ErrUseAdminLogin)
	}
	if !user.IsActive {
		return nil, wrap.Error(ctx, types.ErrAccountDisabled)
	}

	if ok, err := passhash.VerifyPassword(password, user.GetPasswordHash()); err != nil || !ok {
		return nil, wrap.Error(ctx, types.ErrIncorrectPassword)
	}

	return s.issue(ctx, user)
}

// RefreshTokens rotates the token pair for a valid presented refresh token.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	return s.tokenService.Refresh(ctx, refreshToken)
}

// Logout unconditionally clears the stored session secret. Calling it for an
// already logged-out user is a no-op.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	ctx = wrap.WithAction(ctx, "logout")

	if err := s.userRepo.UpdateSessionSecret(ctx, userID, ""); err != nil {
		s.log.Error(ctx, "failed to clear session secret", err)
		return wrap.Error(ctx, ErrUnexpected)
	}
	return nil
}

// RegisterPatient creates a patient account with its profile in a single
// transaction: both rows exist afterwards or neither does.
func (s *AuthService) RegisterPatient(ctx context.Context, req *models.RegisterPatientRequest) (*models.UserProfile, error) {
	ctx = wrap.WithAction(ctx, "register_patient")

	existing, err := s.userRepo.FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		s.log.Error(ctx, "failed to check phone number uniqueness", err)
		return nil, wrap.Error(ctx, ErrUnexpected)
	}
	if existing != nil {
		return nil, wrap.Error(ctx, types.ErrPhoneAlreadyRegistered)
	}

	hash, err := passhash.HashPassword(req.Password)
	if err != nil {
		s.log.Error(ctx, "failed to hash password", err)
		return nil, wrap.Error(ctx, ErrUnexpected)
	}

	user := &models.User{
		PhoneNumber: req.PhoneNumber,
		Role:        types.PatientRole.String(),
		IsActive:    true,
	}
	user.SetPasswordHash(hash)

	profile := &models.PatientProfile{
		FullName:     req.FullName,
		Gender:       req.Gender,
		DateOfBirth:  req.DateOfBirth,
		DiabetesType: req.DiabetesType,
	}

	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return s.patientRepo.Create(txCtx, profile)
	})
	if txErr != nil {
		s.log.Error(ctx, "failed to create patient account", txErr)
		return nil, wrap.Error(ctx, mapCreateError(txErr))
	}

	return &models.UserProfile{User: *user, Patient: profile}, nil
}

// CreateDoctor creates a doctor account with its profile. The phone number is
// checked before the license number; a taken phone short-circuits the license
// check.
func (s *AuthService) CreateDoctor(ctx context.Context, req *models.CreateDoctorRequest) (*models.UserProfile, error) {
	ctx = wrap.WithAction(ctx, "create_doctor")

	existing, err := s.userRepo.FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		s.log.Error(ctx, "failed to check phone number uniqueness", err)
		return nil, wrap.Error(ctx, ErrUnexpected)
	}
	if existing != nil {
		return nil, wrap.Error(ctx, types.ErrPhoneAlreadyRegistered)
	}

	existingDoctor, err := s.doctorRepo.FindByLicense(ctx, req.LicenseNumber)
	if err != nil {
		s.log.Error(ctx, "failed to check license number uniqueness", err)
		return nil, wrap.Error(ctx, ErrUnexpected)
	}
	if existingDoctor != nil {
		return nil, wrap.Error(ctx, types.ErrLicenseAlreadyRegistered)
	}

	hash, err := passhash.HashPassword(req.Password)
	if err != nil {
		s.log.Error(ctx, "failed to hash password", err)
		return nil, wrap.Error(ctx, ErrUnexpected)
	}

	user := &models.User{
		PhoneNumber: req.PhoneNumber,
		Role:        types.DoctorRole.String(),
		IsActive:    true,
	}
	user.SetPasswordHash(hash)

	profile := &models.DoctorProfile{
		FullName:       req.FullName,
		LicenseNumber:  req.LicenseNumber,
		Specialization: req.Specialization,
		Hospital:       req.Hospital,
	}

	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return s.doctorRepo.Create(txCtx, profile)
	})
	if txErr != nil {
		s.log.Error(ctx, "failed to create doctor account", txErr)
		return nil, wrap.Error(ctx, mapCreateError(txErr))
	}

	return &models.UserProfile{User: *user, Doctor: profile}, nil
}

// GetProfile returns the user joined with its role-specific profile. The
// repository never selects credential hashes for this read.
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	ctx = wrap.WithAction(ctx, "get_profile")

	profile, err := s.userRepo.FindWithProfile(ctx, userID)
	if err != nil {
		s.log.Error(ctx, "failed to load user profile", err)
		return nil, wrap.Error(ctx, ErrUnexpected)
	}
	if profile == nil {
		return nil, wrap.Error(ctx, types.ErrUserNotFound)
	}

	return profile, nil
}

// VerifyAccess validates an access token and loads the matching user. Used by
// the auth middleware to populate the request context.
func (s *AuthService) VerifyAccess(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokenService.VerifyAccessToken(token)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUnexpected
	}
	if user == nil {
		return nil, ErrInvalidAccessToken
	}

	return user, nil
}

func (s *AuthService) issue(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	response, err := s.tokenService.GenerateAuthResponse(ctx, user)
	if err != nil {
		return nil, wrap.Error(ctx, ErrTokenGenerateFail)
	}
	return response, nil
}

// mapCreateError converts a unique-constraint race during the transactional
// insert into the same conflict error the pre-check would have produced.
func mapCreateError(err error) error {
	if postgres.IsUniqueViolation(err) {
		return types.ErrPhoneAlreadyRegistered
	}
	return err
}
