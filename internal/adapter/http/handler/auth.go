package handler

import (
	"context"
	"net/http"

	"github.com/diacare/identity-service/internal/adapter/http/handler/dto"
	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/diacare/identity-service/internal/domain/types"
	"github.com/diacare/identity-service/pkg/logger"
	wrap "github.com/diacare/identity-service/pkg/logger/wrapper"
	"github.com/diacare/identity-service/pkg/metrics"
	"github.com/diacare/identity-service/pkg/validator"
	"github.com/google/uuid"
)

const serviceName = "identity-service"

type AuthService interface {
	LoginAdmin(ctx context.Context, email, password string) (*models.AuthResponse, error)
	LoginUser(ctx context.Context, phoneNumber, password string) (*models.AuthResponse, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	RegisterPatient(ctx context.Context, req *models.RegisterPatientRequest) (*models.UserProfile, error)
	CreateDoctor(ctx context.Context, req *models.CreateDoctorRequest) (*models.UserProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}

type Auth struct {
	auth AuthService
	l    logger.Logger
}

func NewAuth(service AuthService, l logger.Logger) *Auth {
	return &Auth{
		auth: service,
		l:    l,
	}
}

func (h *Auth) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "login_admin")

	req := &dto.LoginAdminRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateLoginAdmin(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	tokens, err := h.auth.LoginAdmin(ctx, req.Email, req.Password)
	metrics.RecordLogin(serviceName, types.AdminRole.String(), err)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to login admin", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := okResponse(w, http.StatusOK, "admin login successful", tokens); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

func (h *Auth) LoginUser(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "login_user")

	req := &dto.LoginUserRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateLoginUser(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	tokens, err := h.auth.LoginUser(ctx, req.PhoneNumber, req.Password)
	role := ""
	if tokens != nil {
		role = tokens.Role
	}
	metrics.RecordLogin(serviceName, role, err)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to login user", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := okResponse(w, http.StatusOK, "login successful", tokens); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "refresh_tokens")

	req := &dto.RefreshTokenRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateRefreshToken(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	tokens, err := h.auth.RefreshTokens(ctx, req.RefreshToken)
	metrics.RecordTokenRefresh(serviceName, err)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to refresh token pair", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := okResponse(w, http.StatusOK, "token refreshed", tokens); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "logout")

	user := models.UserFromContext(ctx)
	if user == nil || user.IsAnonymous() {
		errorResponse(w, http.StatusUnauthorized, "authorization required")
		return
	}

	if err := h.auth.Logout(ctx, user.ID); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to logout user", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := okResponse(w, http.StatusOK, "logged out", nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_profile")

	user := models.UserFromContext(ctx)
	if user == nil || user.IsAnonymous() {
		errorResponse(w, http.StatusUnauthorized, "authorization required")
		return
	}

	profile, err := h.auth.GetProfile(ctx, user.ID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get profile", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := okResponse(w, http.StatusOK, "profile fetched", dto.NewProfileResponse(profile)); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

func (h *Auth) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "register_patient")

	req := &dto.RegisterPatientRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateRegisterPatient(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	profile, err := h.auth.RegisterPatient(ctx, req.ToModel())
	metrics.RecordRegistration(serviceName, types.PatientRole.String(), err)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to register patient", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := okResponse(w, http.StatusCreated, "patient registered", dto.NewProfileResponse(profile)); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

func (h *Auth) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "create_doctor")

	req := &dto.CreateDoctorRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateCreateDoctor(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	profile, err := h.auth.CreateDoctor(ctx, req.ToModel())
	metrics.RecordRegistration(serviceName, types.DoctorRole.String(), err)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to create doctor account", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := okResponse(w, http.StatusCreated, "doctor account created", dto.NewProfileResponse(profile)); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}
