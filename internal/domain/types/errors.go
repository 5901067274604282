package types

import "errors"

// User-facing error taxonomy. Handlers map these onto HTTP status codes, the
// auth service returns them untouched so the wire message matches exactly.
var (
	// Not found
	ErrAdminNotFound      = errors.New("admin account does not exist")
	ErrPhoneNotRegistered = errors.New("phone number not registered")
	ErrUserNotFound       = errors.New("user not found")

	// Invalid credential
	ErrIncorrectPassword = errors.New("incorrect password")

	// Forbidden
	ErrUseAdminLogin   = errors.New("forbidden, use admin login")
	ErrAccountDisabled = errors.New("account is disabled")

	// Conflict
	ErrPhoneAlreadyRegistered   = errors.New("phone number already registered")
	ErrLicenseAlreadyRegistered = errors.New("license number already registered")

	// Unauthorized
	ErrRefreshTokenInvalid = errors.New("refresh token invalid or expired")
)
