package auth

import (
	"context"
)

// AuthService defines authentication flows for the three principals.
type AuthService interface {
	// RegisterEmployee creates an employee credential record in Pending status
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) (PrincipalDTO, error)

	// RegisterCentre creates a centre credential record
	RegisterCentre(ctx context.Context, req RegisterCentreRequest) (PrincipalDTO, error)

	// LoginEmployee authenticates an employee; pending accounts are rejected
	LoginEmployee(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// LoginCentre authenticates a centre operator
	LoginCentre(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// LoginAdmin authenticates an administrator by admin ID
	LoginAdmin(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a live refresh token for a fresh token pair
	Refresh(ctx context.Context, req RefreshRequest) (LoginResponse, error)

	// ChangePassword rewrites the password after verifying the current one
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// ListCentres retrieves all registered centres
	ListCentres(ctx context.Context) ([]CentreResponse, error)

	// ForgotPassword issues a one-time code to the account email. It
	// reports success even for unknown emails so the endpoint cannot be
	// used to probe which addresses exist.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error

	// ResetPassword verifies the one-time code and rewrites the password
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
