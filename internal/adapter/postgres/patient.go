package postgres

import (
	"context"
	"errors"

	"github.com/diacare/identity-service/internal/domain/models"
)

type PatientRepo struct {
	db Querier
}

func NewPatientRepo(db Querier) *PatientRepo {
	return &PatientRepo{db: db}
}

// Create inserts a patient profile row. Expected to run inside the same
// transaction as the owning user insert.
func (r *PatientRepo) Create(ctx context.Context, profile *models.PatientProfile) error {
	if profile == nil {
		return errors.New("nil patient profile")
	}

	const q = `
		INSERT INTO patients (user_id, full_name, gender, date_of_birth, diabetes_type)
		VALUES ($1, $2, NULLIF($3, '')::gender, NULLIF($4, '')::date, NULLIF($5, '')::diabetes_type)
		RETURNING id, created_at;
	`

	return TxOrDB(ctx, r.db).QueryRow(
		ctx, q,
		profile.UserID,
		profile.FullName,
		profile.Gender,
		profile.DateOfBirth,
		profile.DiabetesType,
	).Scan(&profile.ID, &profile.CreatedAt)
}
