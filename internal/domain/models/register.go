package models

// RegisterPatientRequest carries validated input for patient self-registration.
type RegisterPatientRequest struct {
	PhoneNumber  string
	Password     string
	FullName     string
	Gender       string
	DateOfBirth  string
	DiabetesType string
}

// CreateDoctorRequest carries validated input for admin-driven doctor creation.
type CreateDoctorRequest struct {
	PhoneNumber    string
	Password       string
	FullName       string
	LicenseNumber  string
	Specialization string
	Hospital       string
}
