package postgres

import (
	"context"
	"errors"

	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/jackc/pgx/v5"
)

type DoctorRepo struct {
	db Querier
}

func NewDoctorRepo(db Querier) *DoctorRepo {
	return &DoctorRepo{db: db}
}

// Create inserts a doctor profile row. Expected to run inside the same
// transaction as the owning user insert.
func (r *DoctorRepo) Create(ctx context.Context, profile *models.DoctorProfile) error {
	if profile == nil {
		return errors.New("nil doctor profile")
	}

	const q = `
		INSERT INTO doctors (user_id, full_name, license_number, specialization, hospital)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
		RETURNING id, created_at;
	`

	return TxOrDB(ctx, r.db).QueryRow(
		ctx, q,
		profile.UserID,
		profile.FullName,
		profile.LicenseNumber,
		profile.Specialization,
		profile.Hospital,
	).Scan(&profile.ID, &profile.CreatedAt)
}

// FindByLicense fetches a doctor profile by license number (unique). Returns
// (nil, nil) when no doctor carries the license.
func (r *DoctorRepo) FindByLicense(ctx context.Context, licenseNumber string) (*models.DoctorProfile, error) {
	if licenseNumber == "" {
		return nil, errors.New("license number is required")
	}

	const q = `
		SELECT id, user_id, full_name, license_number, specialization, hospital, created_at
		FROM doctors
		WHERE license_number = $1 AND deleted_at IS NULL;
	`

	var (
		profile        models.DoctorProfile
		specialization *string
		hospital       *string
	)

	err := TxOrDB(ctx, r.db).QueryRow(ctx, q, licenseNumber).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.LicenseNumber,
		&specialization,
		&hospital,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // not found
		}
		return nil, err
	}

	profile.Specialization = deref(specialization)
	profile.Hospital = deref(hospital)

	return &profile, nil
}
