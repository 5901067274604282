package handler

import (
	"errors"
	"net/http"

	"github.com/diacare/identity-service/internal/service/auth"

	t "github.com/diacare/identity-service/internal/domain/types"
)

// errorResponse writes an error envelope. The message is the user-facing
// error text; data stays null on failures.
func errorResponse(w http.ResponseWriter, status int, message string) {
	env := envelope{
		StatusCode: status,
		Message:    message,
		Data:       nil,
	}

	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(500)
	}
}

// failedValidationResponse returns 422 Unprocessable Entity with the field
// errors as payload. Repeating the request unmodified will fail identically.
func failedValidationResponse(w http.ResponseWriter, fieldErrors map[string]string) {
	env := envelope{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "validation failed",
		Data:       fieldErrors,
	}
	if err := writeJSON(w, http.StatusUnprocessableEntity, env, nil); err != nil {
		w.WriteHeader(500)
	}
}

func badRequestResponse(w http.ResponseWriter, message string) {
	errorResponse(w, http.StatusBadRequest, message)
}

func internalErrorResponse(w http.ResponseWriter, message string) {
	errorResponse(w, http.StatusInternalServerError, message)
}

// GetCode maps the domain error taxonomy onto HTTP status codes.
func GetCode(err error) int {
	switch {
	case IsOneOf(err, t.ErrAdminNotFound, t.ErrPhoneNotRegistered, t.ErrUserNotFound):
		return http.StatusNotFound
	case IsOneOf(err, t.ErrIncorrectPassword, t.ErrRefreshTokenInvalid, auth.ErrInvalidAccessToken):
		return http.StatusUnauthorized
	case IsOneOf(err, t.ErrUseAdminLogin, t.ErrAccountDisabled):
		return http.StatusForbidden
	case IsOneOf(err, t.ErrPhoneAlreadyRegistered, t.ErrLicenseAlreadyRegistered):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func IsOneOf(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
