package models

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile is the role-specific profile row for PATIENT accounts.
type PatientProfile struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name"`
	Gender       string    `json:"gender,omitempty"`
	DateOfBirth  string    `json:"date_of_birth,omitempty"`
	DiabetesType string    `json:"diabetes_type,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

// DoctorProfile is the role-specific profile row for DOCTOR accounts.
type DoctorProfile struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	FullName       string    `json:"full_name"`
	LicenseNumber  string    `json:"license_number"`
	Specialization string    `json:"specialization,omitempty"`
	Hospital       string    `json:"hospital,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
}

// UserProfile joins a user with its role-specific profile. Exactly one of
// Patient/Doctor is set for non-admin accounts; both are nil for admins.
type UserProfile struct {
	User    User            `json:"user"`
	Patient *PatientProfile `json:"patient,omitempty"`
	Doctor  *DoctorProfile  `json:"doctor,omitempty"`
}

// Profile returns the sub-record matching the stored role, or nil.
func (p *UserProfile) Profile() any {
	switch p.User.Role {
	case "PATIENT":
		if p.Patient != nil {
			return p.Patient
		}
	case "DOCTOR":
		if p.Doctor != nil {
			return p.Doctor
		}
	}
	return nil
}
