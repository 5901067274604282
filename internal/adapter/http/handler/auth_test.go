package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/diacare/identity-service/internal/domain/types"
	"github.com/diacare/identity-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthService returns canned values per call.
type stubAuthService struct {
	loginUserResp *models.AuthResponse
	loginUserErr  error

	profile    *models.UserProfile
	profileErr error
}

func (s *stubAuthService) LoginAdmin(context.Context, string, string) (*models.AuthResponse, error) {
	return s.loginUserResp, s.loginUserErr
}

func (s *stubAuthService) LoginUser(context.Context, string, string) (*models.AuthResponse, error) {
	return s.loginUserResp, s.loginUserErr
}

func (s *stubAuthService) RefreshTokens(context.Context, string) (*models.AuthResponse, error) {
	return s.loginUserResp, s.loginUserErr
}

func (s *stubAuthService) Logout(context.Context, uuid.UUID) error {
	return nil
}

func (s *stubAuthService) RegisterPatient(context.Context, *models.RegisterPatientRequest) (*models.UserProfile, error) {
	return s.profile, s.profileErr
}

func (s *stubAuthService) CreateDoctor(context.Context, *models.CreateDoctorRequest) (*models.UserProfile, error) {
	return s.profile, s.profileErr
}

func (s *stubAuthService) GetProfile(context.Context, uuid.UUID) (*models.UserProfile, error) {
	return s.profile, s.profileErr
}

func newTestAuthHandler(stub *stubAuthService) *Auth {
	return NewAuth(stub, logger.InitLogger("test", logger.LevelError))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestLoginUserHandler(t *testing.T) {
	userID := uuid.New()
	h := newTestAuthHandler(&stubAuthService{
		loginUserResp: &models.AuthResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			UserID:       userID,
			Role:         "PATIENT",
		},
	})

	body := `{"phoneNumber": "0983333333", "password": "password123"}`
	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.LoginUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, "login successful", env.Message)

	data := env.Data.(map[string]any)
	assert.Equal(t, "access", data["accessToken"])
	assert.Equal(t, "refresh", data["refreshToken"])
	assert.Equal(t, "PATIENT", data["role"])
}

func TestLoginUserHandler_UnknownPhone(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{
		loginUserErr: types.ErrPhoneNotRegistered,
	})

	body := `{"phoneNumber": "0900000000", "password": "password123"}`
	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.LoginUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, types.ErrPhoneNotRegistered.Error(), env.Message)
	assert.Nil(t, env.Data)
}

func TestLoginUserHandler_ValidationFailure(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{})

	body := `{"phoneNumber": "", "password": ""}`
	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.LoginUser(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	fields := env.Data.(map[string]any)
	assert.Contains(t, fields, "phoneNumber")
	assert.Contains(t, fields, "password")
}

func TestLoginUserHandler_MalformedBody(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{})

	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(`{"phoneNumber": `))
	rec := httptest.NewRecorder()

	h.LoginUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterPatientHandler_Conflict(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{
		profileErr: types.ErrPhoneAlreadyRegistered,
	})

	body := `{"phoneNumber": "0983333333", "password": "password123", "fullName": "Nguyen Van A", "gender": "MALE", "dateOfBirth": "1990-01-01"}`
	req := httptest.NewRequest("POST", "/api/v1/auth/register/patient", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.RegisterPatient(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMeHandler(t *testing.T) {
	user := models.User{ID: uuid.New(), PhoneNumber: "0983333333", Role: "PATIENT", IsActive: true}
	h := newTestAuthHandler(&stubAuthService{
		profile: &models.UserProfile{
			User: user,
			Patient: &models.PatientProfile{
				UserID:   user.ID,
				FullName: "Nguyen Van A",
			},
		},
	})

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req = req.WithContext(models.WithUser(req.Context(), &user))
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	data := env.Data.(map[string]any)
	assert.Contains(t, data, "user")
	assert.Contains(t, data, "profile")

	// Credential hashes never leak into the response.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "hashed_refresh_token")
}

func TestMeHandler_Anonymous(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{})

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
