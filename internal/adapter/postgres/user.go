package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/diacare/identity-service/internal/domain/types"
	"github.com/diacare/identity-service/pkg/metrics"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const serviceName = "identity-service"

type UserRepo struct {
	db Querier
}

func NewUserRepo(db Querier) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

// Create inserts a user row. It expects the login handle (email or phone
// number), role and password hash to be set. Empty handles are stored as NULL
// to keep the partial unique indexes meaningful.
func (r *UserRepo) Create(ctx context.Context, u *models.User) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(serviceName, "user_create", err, time.Since(start)) }()

	if u == nil {
		return errors.New("nil user")
	}

	const q = `
		INSERT INTO users (email, phone_number, role, password_hash, is_active)
		VALUES (NULLIF($1, ''), NULLIF($2, ''), $3, $4, $5)
		RETURNING id, created_at, updated_at;
	`

	err = TxOrDB(ctx, r.db).QueryRow(
		ctx, q, u.Email, u.PhoneNumber, u.Role, u.GetPasswordHash(), u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	return err
}

// FindAdminByEmail fetches an ADMIN account by email. Returns (nil, nil) when
// no such account exists.
func (r *UserRepo) FindAdminByEmail(ctx context.Context, email string) (u *models.User, err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(serviceName, "user_find_admin_by_email", err, time.Since(start)) }()

	if email == "" {
		return nil, errors.New("email is required")
	}

	const q = `
		SELECT id, email, phone_number, role, password_hash, hashed_refresh_token, is_active, created_at, updated_at
		FROM users
		WHERE email = $1 AND role = $2 AND deleted_at IS NULL;
	`

	return r.scanUser(TxOrDB(ctx, r.db).QueryRow(ctx, q, email, types.AdminRole.String()))
}

// FindByPhone fetches any account by phone number. Returns (nil, nil) when no
// such account exists.
func (r *UserRepo) FindByPhone(ctx context.Context, phoneNumber string) (u *models.User, err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(serviceName, "user_find_by_phone", err, time.Since(start)) }()

	if phoneNumber == "" {
		return nil, errors.New("phone number is required")
	}

	const q = `
		SELECT id, email, phone_number, role, password_hash, hashed_refresh_token, is_active, created_at, updated_at
		FROM users
		WHERE phone_number = $1 AND deleted_at IS NULL;
	`

	return r.scanUser(TxOrDB(ctx, r.db).QueryRow(ctx, q, phoneNumber))
}

// FindByID fetches the columns the refresh flow needs: identity, login
// handles, role and the stored session secret.
func (r *UserRepo) FindByID(ctx context.Context, userID uuid.UUID) (u *models.User, err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(serviceName, "user_find_by_id", err, time.Since(start)) }()

	const q = `
		SELECT id, email, phone_number, role, password_hash, hashed_refresh_token, is_active, created_at, updated_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL;
	`

	return r.scanUser(TxOrDB(ctx, r.db).QueryRow(ctx, q, userID))
}

// UpdateSessionSecret overwrites the stored refresh-token hash. An empty hash
// clears the column, which logs the user out.
func (r *UserRepo) UpdateSessionSecret(ctx context.Context, userID uuid.UUID, hash string) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(serviceName, "user_update_session_secret", err, time.Since(start)) }()

	const q = `
		UPDATE users
		SET hashed_refresh_token = NULLIF($2, ''),
		    updated_at = now()
		WHERE id = $1;
	`

	_, err = TxOrDB(ctx, r.db).Exec(ctx, q, userID, hash)
	return err
}

// FindWithProfile fetches a user joined with its role-specific profile row.
// Credential hashes are deliberately not selected.
func (r *UserRepo) FindWithProfile(ctx context.Context, userID uuid.UUID) (p *models.UserProfile, err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(serviceName, "user_find_with_profile", err, time.Since(start)) }()

	const q = `
		SELECT u.id, u.email, u.phone_number, u.role, u.is_active, u.created_at, u.updated_at,
		       p.id, p.full_name, p.gender, p.date_of_birth, p.diabetes_type,
		       d.id, d.full_name, d.license_number, d.specialization, d.hospital
		FROM users u
		LEFT JOIN patients p ON p.user_id = u.id
		LEFT JOIN doctors d ON d.user_id = u.id AND d.deleted_at IS NULL
		WHERE u.id = $1 AND u.deleted_at IS NULL;
	`

	var (
		profile models.UserProfile
		email   *string
		phone   *string

		patientID      *uuid.UUID
		patientName    *string
		gender         *string
		dateOfBirth    *time.Time
		diabetesType   *string
		doctorID       *uuid.UUID
		doctorName     *string
		license        *string
		specialization *string
		hospital       *string
	)

	err = TxOrDB(ctx, r.db).QueryRow(ctx, q, userID).Scan(
		&profile.User.ID,
		&email,
		&phone,
		&profile.User.Role,
		&profile.User.IsActive,
		&profile.User.CreatedAt,
		&profile.User.UpdatedAt,
		&patientID,
		&patientName,
		&gender,
		&dateOfBirth,
		&diabetesType,
		&doctorID,
		&doctorName,
		&license,
		&specialization,
		&hospital,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // not found
		}
		return nil, err
	}

	profile.User.Email = deref(email)
	profile.User.PhoneNumber = deref(phone)

	if profile.User.Role == types.PatientRole.String() && patientID != nil {
		patient := &models.PatientProfile{
			ID:           *patientID,
			UserID:       profile.User.ID,
			FullName:     deref(patientName),
			Gender:       deref(gender),
			DiabetesType: deref(diabetesType),
		}
		if dateOfBirth != nil {
			patient.DateOfBirth = dateOfBirth.Format("2006-01-02")
		}
		profile.Patient = patient
	}

	if profile.User.Role == types.DoctorRole.String() && doctorID != nil {
		profile.Doctor = &models.DoctorProfile{
			ID:             *doctorID,
			UserID:         profile.User.ID,
			FullName:       deref(doctorName),
			LicenseNumber:  deref(license),
			Specialization: deref(specialization),
			Hospital:       deref(hospital),
		}
	}

	return &profile, nil
}

func (r *UserRepo) scanUser(row pgx.Row) (*models.User, error) {
	var (
		u             models.User
		email         *string
		phone         *string
		passwordHash  string
		sessionSecret *string
	)

	err := row.Scan(
		&u.ID,
		&email,
		&phone,
		&u.Role,
		&passwordHash,
		&sessionSecret,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // not found
		}
		return nil, err
	}

	u.Email = deref(email)
	u.PhoneNumber = deref(phone)
	u.SetPasswordHash(passwordHash)
	u.SetSessionSecret(deref(sessionSecret))

	return &u, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
