package types

// UserRole is the account role stored on the user row. It is immutable after
// creation and drives which login handle the account carries: admins log in
// with an email address, doctors and patients with a phone number.
type UserRole string

func (r UserRole) String() string {
	return string(r)
}

const (
	AdminRole   UserRole = "ADMIN"
	DoctorRole  UserRole = "DOCTOR"
	PatientRole UserRole = "PATIENT"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case AdminRole, DoctorRole, PatientRole:
		return true
	default:
		return false
	}
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type DiabetesType string

const (
	DiabetesType1     DiabetesType = "TYPE_1"
	DiabetesType2     DiabetesType = "TYPE_2"
	DiabetesGDM       DiabetesType = "GDM"
	DiabetesTypeOther DiabetesType = "OTHER"
)
