package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/emscore/ems-backend-go/internal/domain/auth"
	"github.com/emscore/ems-backend-go/internal/handler/http/response"
	"github.com/emscore/ems-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	RegisterEmployee(w http.ResponseWriter, r *http.Request)
	RegisterCentre(w http.ResponseWriter, r *http.Request)
	LoginEmployee(w http.ResponseWriter, r *http.Request)
	LoginCentre(w http.ResponseWriter, r *http.Request)
	LoginAdmin(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	ListCentres(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// RegisterEmployee implements AuthHandler.
func (h *authHandlerImpl) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterEmployeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.authService.RegisterEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration submitted for approval", result)
}

// RegisterCentre implements AuthHandler.
func (h *authHandlerImpl) RegisterCentre(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterCentreRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.authService.RegisterCentre(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Centre registered", result)
}

// LoginEmployee implements AuthHandler.
func (h *authHandlerImpl) LoginEmployee(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.authService.LoginEmployee)
}

// LoginCentre implements AuthHandler.
func (h *authHandlerImpl) LoginCentre(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.authService.LoginCentre)
}

// LoginAdmin implements AuthHandler.
func (h *authHandlerImpl) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.authService.LoginAdmin)
}

func (h *authHandlerImpl) login(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error),
) {
	var req auth.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Refresh implements AuthHandler.
func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.authService.Refresh(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListCentres implements AuthHandler.
func (h *authHandlerImpl) ListCentres(w http.ResponseWriter, r *http.Request) {
	result, err := h.authService.ListCentres(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ChangePassword implements AuthHandler.
func (h *authHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ChangePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Password updated"})
}

// ForgotPassword implements AuthHandler.
func (h *authHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ForgotPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{
		"message": "If the email is registered, a reset code has been sent",
	})
}

// ResetPassword implements AuthHandler.
func (h *authHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Password updated"})
}

// Logout implements AuthHandler. The access token is revoked so it cannot
// be replayed for the rest of its lifetime.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	raw := jwtauth.TokenFromHeader(r)
	if raw == "" {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	if err := h.jwtService.RevokeToken(r.Context(), raw); err != nil {
		slog.Error("Failed to revoke token", "error", err)
		response.InternalServerError(w, "Failed to log out")
		return
	}

	response.Success(w, map[string]string{"message": "Logged out"})
}
