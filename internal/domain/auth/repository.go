package auth

import (
	"context"
)

// LoginRepository defines data access for the three credential stores.
type LoginRepository interface {
	// CreateEmployeeLogin inserts a credential record in Pending status;
	// duplicate emails return ErrEmailTaken
	CreateEmployeeLogin(ctx context.Context, login EmployeeLogin) (EmployeeLogin, error)

	// GetEmployeeLoginByEmail retrieves a record, or ErrAccountNotFound
	GetEmployeeLoginByEmail(ctx context.Context, email string) (EmployeeLogin, error)

	// UpdateEmployeeLoginStatus mirrors the profile approval onto the login
	UpdateEmployeeLoginStatus(ctx context.Context, employeeID, status string) error

	// CreateCentreLogin inserts a centre credential record; duplicate
	// usernames return ErrUsernameTaken, duplicate emails ErrEmailTaken
	CreateCentreLogin(ctx context.Context, login CentreLogin) (CentreLogin, error)

	// GetCentreLoginByEmail retrieves a record, or ErrAccountNotFound
	GetCentreLoginByEmail(ctx context.Context, email string) (CentreLogin, error)

	// ListCentres retrieves all registered centres
	ListCentres(ctx context.Context) ([]CentreLogin, error)

	// GetAdminLoginByAdminID retrieves a record, or ErrAccountNotFound
	GetAdminLoginByAdminID(ctx context.Context, adminID string) (AdminLogin, error)

	// GetAdminLoginByEmail retrieves a record, or ErrAccountNotFound
	GetAdminLoginByEmail(ctx context.Context, email string) (AdminLogin, error)

	// UpdatePasswordByEmail rewrites the stored hash for the principal kind
	// owning the email; used by the OTP reset flow
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
}
