package dto

import (
	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/diacare/identity-service/pkg/validator"
)

type LoginAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RegisterPatientRequest struct {
	PhoneNumber  string `json:"phoneNumber"`
	Password     string `json:"password"`
	FullName     string `json:"fullName"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	DiabetesType string `json:"diabetesType,omitempty"`
}

func (r *RegisterPatientRequest) ToModel() *models.RegisterPatientRequest {
	return &models.RegisterPatientRequest{
		PhoneNumber:  r.PhoneNumber,
		Password:     r.Password,
		FullName:     r.FullName,
		Gender:       r.Gender,
		DateOfBirth:  r.DateOfBirth,
		DiabetesType: r.DiabetesType,
	}
}

type CreateDoctorRequest struct {
	PhoneNumber    string `json:"phoneNumber"`
	Password       string `json:"password"`
	FullName       string `json:"fullName"`
	LicenseNumber  string `json:"licenseNumber"`
	Specialization string `json:"specialization,omitempty"`
	Hospital       string `json:"hospital,omitempty"`
}

func (r *CreateDoctorRequest) ToModel() *models.CreateDoctorRequest {
	return &models.CreateDoctorRequest{
		PhoneNumber:    r.PhoneNumber,
		Password:       r.Password,
		FullName:       r.FullName,
		LicenseNumber:  r.LicenseNumber,
		Specialization: r.Specialization,
		Hospital:       r.Hospital,
	}
}

// ProfileResponse mirrors the shape of the profile endpoint: the account
// fields plus the role-specific sub-record. Credential hashes never appear
// here because the model keeps them unexported.
type ProfileResponse struct {
	User    models.User `json:"user"`
	Profile any         `json:"profile"`
}

func NewProfileResponse(p *models.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		User:    p.User,
		Profile: p.Profile(),
	}
}

func ValidateLoginAdmin(v *validator.Validator, req *LoginAdminRequest) {
	v.Check(req.Email != "", "email", "must be provided")
	v.Check(validator.Matches(req.Email, validator.EmailRX), "email", "must be a valid email address")
	v.Check(req.Password != "", "password", "must be provided")
}

func ValidateLoginUser(v *validator.Validator, req *LoginUserRequest) {
	v.Check(req.PhoneNumber != "", "phoneNumber", "must be provided")
	v.Check(req.Password != "", "password", "must be provided")
}

func ValidateRefreshToken(v *validator.Validator, req *RefreshTokenRequest) {
	v.Check(req.RefreshToken != "", "refreshToken", "must be provided")
}

func ValidateRegisterPatient(v *validator.Validator, req *RegisterPatientRequest) {
	validateCredentials(v, req.PhoneNumber, req.Password)

	v.Check(req.FullName != "", "fullName", "must be provided")
	v.Check(len(req.FullName) <= 200, "fullName", "must not be more than 200 bytes long")

	v.Check(req.Gender != "", "gender", "must be provided")
	v.Check(validator.PermittedValue(req.Gender, "MALE", "FEMALE", "OTHER"), "gender", "must be one of MALE, FEMALE, OTHER")

	v.Check(req.DateOfBirth != "", "dateOfBirth", "must be provided")
	v.Check(validator.Matches(req.DateOfBirth, validator.DateRX), "dateOfBirth", "must be a date in YYYY-MM-DD form")

	if req.DiabetesType != "" {
		v.Check(validator.PermittedValue(req.DiabetesType, "TYPE_1", "TYPE_2", "GDM", "OTHER"), "diabetesType", "must be one of TYPE_1, TYPE_2, GDM, OTHER")
	}
}

func ValidateCreateDoctor(v *validator.Validator, req *CreateDoctorRequest) {
	validateCredentials(v, req.PhoneNumber, req.Password)

	v.Check(req.FullName != "", "fullName", "must be provided")
	v.Check(len(req.FullName) <= 200, "fullName", "must not be more than 200 bytes long")

	v.Check(req.LicenseNumber != "", "licenseNumber", "must be provided")
	v.Check(len(req.LicenseNumber) <= 50, "licenseNumber", "must not be more than 50 bytes long")
}

func validateCredentials(v *validator.Validator, phoneNumber, password string) {
	v.Check(phoneNumber != "", "phoneNumber", "must be provided")
	v.Check(validator.Matches(phoneNumber, validator.PhoneRX), "phoneNumber", "must be exactly 10 digits")

	v.Check(password != "", "password", "must be provided")
	v.Check(len(password) >= 6, "password", "must be at least 6 bytes long")
	v.Check(len(password) <= 72, "password", "must not be more than 72 bytes long")
}
