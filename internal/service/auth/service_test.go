package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/emscore/ems-backend-go/internal/domain/auth"
	"github.com/emscore/ems-backend-go/internal/pkg/jwt"
)

type fakeLoginRepo struct {
	employee *auth.EmployeeLogin
	centre   *auth.CentreLogin
	admin    *auth.AdminLogin
}

func (f *fakeLoginRepo) CreateEmployeeLogin(_ context.Context, login auth.EmployeeLogin) (auth.EmployeeLogin, error) {
	login.ID = "login-1"
	f.employee = &login
	return login, nil
}

func (f *fakeLoginRepo) GetEmployeeLoginByEmail(_ context.Context, email string) (auth.EmployeeLogin, error) {
	if f.employee == nil || f.employee.Email != email {
		return auth.EmployeeLogin{}, auth.ErrAccountNotFound
	}
	return *f.employee, nil
}

func (f *fakeLoginRepo) UpdateEmployeeLoginStatus(_ context.Context, employeeID, status string) error {
	if f.employee != nil && f.employee.EmployeeID == employeeID {
		f.employee.Status = status
	}
	return nil
}

func (f *fakeLoginRepo) CreateCentreLogin(_ context.Context, login auth.CentreLogin) (auth.CentreLogin, error) {
	login.ID = "login-2"
	f.centre = &login
	return login, nil
}

func (f *fakeLoginRepo) GetCentreLoginByEmail(_ context.Context, email string) (auth.CentreLogin, error) {
	if f.centre == nil || f.centre.Email != email {
		return auth.CentreLogin{}, auth.ErrAccountNotFound
	}
	return *f.centre, nil
}

func (f *fakeLoginRepo) ListCentres(_ context.Context) ([]auth.CentreLogin, error) {
	if f.centre == nil {
		return nil, nil
	}
	return []auth.CentreLogin{*f.centre}, nil
}

func (f *fakeLoginRepo) GetAdminLoginByAdminID(_ context.Context, adminID string) (auth.AdminLogin, error) {
	if f.admin == nil || f.admin.AdminID != adminID {
		return auth.AdminLogin{}, auth.ErrAccountNotFound
	}
	return *f.admin, nil
}

func (f *fakeLoginRepo) GetAdminLoginByEmail(_ context.Context, email string) (auth.AdminLogin, error) {
	if f.admin == nil || f.admin.Email != email {
		return auth.AdminLogin{}, auth.ErrAccountNotFound
	}
	return *f.admin, nil
}

func (f *fakeLoginRepo) UpdatePasswordByEmail(_ context.Context, email, passwordHash string) error {
	if f.employee != nil && f.employee.Email == email {
		f.employee.Password = passwordHash
		return nil
	}
	return auth.ErrAccountNotFound
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(repo *fakeLoginRepo) *AuthServiceImpl {
	return &AuthServiceImpl{
		LoginRepository: repo,
		jwtSvc:          jwt.NewJWTService("test-secret", "15m", "168h", jwt.NewMemoryRevocationStore()),
	}
}

func TestLoginEmployeeSuccess(t *testing.T) {
	repo := &fakeLoginRepo{employee: &auth.EmployeeLogin{
		ID:         "login-1",
		EmployeeID: "emp-1",
		Email:      "ravi@example.com",
		Password:   hashOf(t, "secret-password"),
		FirstName:  "Ravi",
		LastName:   "Kumar",
		Role:       auth.RoleEmployee,
		Status:     "Approved",
	}}
	svc := newTestService(repo)

	resp, err := svc.LoginEmployee(context.Background(), auth.LoginRequest{
		Identifier: "ravi@example.com",
		Password:   "secret-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "employee", resp.Role)
	assert.Equal(t, "Ravi Kumar", resp.Principal.Name)
	require.NotNil(t, resp.Principal.EmployeeID)
	assert.Equal(t, "emp-1", *resp.Principal.EmployeeID)
}

func TestLoginEmployeeWrongPassword(t *testing.T) {
	repo := &fakeLoginRepo{employee: &auth.EmployeeLogin{
		Email:    "ravi@example.com",
		Password: hashOf(t, "secret-password"),
		Status:   "Approved",
	}}
	svc := newTestService(repo)

	_, err := svc.LoginEmployee(context.Background(), auth.LoginRequest{
		Identifier: "ravi@example.com",
		Password:   "wrong",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginEmployeeUnknownEmail(t *testing.T) {
	svc := newTestService(&fakeLoginRepo{})

	_, err := svc.LoginEmployee(context.Background(), auth.LoginRequest{
		Identifier: "nobody@example.com",
		Password:   "whatever",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginEmployeePendingAccount(t *testing.T) {
	repo := &fakeLoginRepo{employee: &auth.EmployeeLogin{
		Email:    "ravi@example.com",
		Password: hashOf(t, "secret-password"),
		Status:   "Pending",
	}}
	svc := newTestService(repo)

	_, err := svc.LoginEmployee(context.Background(), auth.LoginRequest{
		Identifier: "ravi@example.com",
		Password:   "secret-password",
	})
	require.ErrorIs(t, err, auth.ErrAccountNotApproved)
}

func TestLoginAdminByAdminID(t *testing.T) {
	repo := &fakeLoginRepo{admin: &auth.AdminLogin{
		ID:       "login-3",
		AdminID:  "ADM001",
		Email:    "admin@example.com",
		Password: hashOf(t, "admin-password"),
		Name:     "Site Admin",
		Role:     auth.RoleAdmin,
	}}
	svc := newTestService(repo)

	resp, err := svc.LoginAdmin(context.Background(), auth.LoginRequest{
		Identifier: "ADM001",
		Password:   "admin-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.Role)
	require.NotNil(t, resp.Principal.AdminID)
	assert.Equal(t, "ADM001", *resp.Principal.AdminID)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	repo := &fakeLoginRepo{employee: &auth.EmployeeLogin{
		ID:         "login-1",
		EmployeeID: "emp-1",
		Email:      "ravi@example.com",
		Password:   hashOf(t, "secret-password"),
		FirstName:  "Ravi",
		LastName:   "Kumar",
		Role:       auth.RoleEmployee,
		Status:     "Approved",
	}}
	svc := newTestService(repo)

	loginResp, err := svc.LoginEmployee(context.Background(), auth.LoginRequest{
		Identifier: "ravi@example.com",
		Password:   "secret-password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, loginResp.RefreshToken)

	resp, err := svc.Refresh(context.Background(), auth.RefreshRequest{
		RefreshToken: loginResp.RefreshToken,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, loginResp.RefreshToken, resp.RefreshToken)
	assert.Equal(t, "employee", resp.Role)
	assert.Equal(t, "Ravi Kumar", resp.Principal.Name)
	require.NotNil(t, resp.Principal.EmployeeID)
	assert.Equal(t, "emp-1", *resp.Principal.EmployeeID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := &fakeLoginRepo{employee: &auth.EmployeeLogin{
		Email:    "ravi@example.com",
		Password: hashOf(t, "secret-password"),
		Role:     auth.RoleEmployee,
		Status:   "Approved",
	}}
	svc := newTestService(repo)

	loginResp, err := svc.LoginEmployee(context.Background(), auth.LoginRequest{
		Identifier: "ravi@example.com",
		Password:   "secret-password",
	})
	require.NoError(t, err)

	// The short-lived access token is not accepted in place of a refresh
	// token.
	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{
		RefreshToken: loginResp.Token,
	})
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := newTestService(&fakeLoginRepo{})

	_, err := svc.Refresh(context.Background(), auth.RefreshRequest{
		RefreshToken: "not-a-token",
	})
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRejectsRevokedToken(t *testing.T) {
	repo := &fakeLoginRepo{employee: &auth.EmployeeLogin{
		Email:    "ravi@example.com",
		Password: hashOf(t, "secret-password"),
		Role:     auth.RoleEmployee,
		Status:   "Approved",
	}}
	svc := newTestService(repo)

	loginResp, err := svc.LoginEmployee(context.Background(), auth.LoginRequest{
		Identifier: "ravi@example.com",
		Password:   "secret-password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.jwtSvc.RevokeToken(context.Background(), loginResp.RefreshToken))

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{
		RefreshToken: loginResp.RefreshToken,
	})
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	repo := &fakeLoginRepo{employee: &auth.EmployeeLogin{
		Email:    "ravi@example.com",
		Password: hashOf(t, "old-password"),
		Status:   "Approved",
	}}
	svc := newTestService(repo)

	err := svc.ChangePassword(context.Background(), auth.ChangePasswordRequest{
		Email:       "ravi@example.com",
		OldPassword: "wrong-password",
		NewPassword: "new-password-123",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), auth.ChangePasswordRequest{
		Email:       "ravi@example.com",
		OldPassword: "old-password",
		NewPassword: "new-password-123",
	})
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.employee.Password), []byte("new-password-123")))
}

func TestChangePasswordUnknownEmail(t *testing.T) {
	svc := newTestService(&fakeLoginRepo{})

	err := svc.ChangePassword(context.Background(), auth.ChangePasswordRequest{
		Email:       "nobody@example.com",
		OldPassword: "whatever",
		NewPassword: "new-password-123",
	})
	require.ErrorIs(t, err, auth.ErrAccountNotFound)
}

func TestRegisterEmployeeHashesPassword(t *testing.T) {
	repo := &fakeLoginRepo{}
	svc := newTestService(repo)

	_, err := svc.RegisterEmployee(context.Background(), auth.RegisterEmployeeRequest{
		EmployeeID: "emp-1",
		Email:      "ravi@example.com",
		Password:   "secret-password",
		FirstName:  "Ravi",
		LastName:   "Kumar",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.employee)
	assert.NotEqual(t, "secret-password", repo.employee.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.employee.Password), []byte("secret-password")))
	assert.Equal(t, "Pending", repo.employee.Status)
}
