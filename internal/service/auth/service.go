package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/emscore/ems-backend-go/internal/domain/auth"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
	"github.com/emscore/ems-backend-go/internal/pkg/email"
	"github.com/emscore/ems-backend-go/internal/pkg/jwt"
	"github.com/emscore/ems-backend-go/internal/pkg/otp"
)

type AuthServiceImpl struct {
	db *database.DB
	auth.LoginRepository
	jwtSvc   jwt.Service
	otpStore *otp.Store
	emailSvc email.EmailService
}

// RegisterEmployee implements auth.AuthService.
func (a *AuthServiceImpl) RegisterEmployee(ctx context.Context, req auth.RegisterEmployeeRequest) (auth.PrincipalDTO, error) {
	if err := req.Validate(); err != nil {
		return auth.PrincipalDTO{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.PrincipalDTO{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.LoginRepository.CreateEmployeeLogin(ctx, auth.EmployeeLogin{
		EmployeeID: req.EmployeeID,
		CenterCode: req.CenterCode,
		Email:      req.Email,
		Password:   string(hash),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       auth.RoleEmployee,
		Status:     "Pending",
	})
	if err != nil {
		return auth.PrincipalDTO{}, err
	}

	return auth.PrincipalDTO{
		ID:         created.ID,
		Email:      created.Email,
		Name:       created.FirstName + " " + created.LastName,
		EmployeeID: &created.EmployeeID,
	}, nil
}

// RegisterCentre implements auth.AuthService.
func (a *AuthServiceImpl) RegisterCentre(ctx context.Context, req auth.RegisterCentreRequest) (auth.PrincipalDTO, error) {
	if err := req.Validate(); err != nil {
		return auth.PrincipalDTO{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.PrincipalDTO{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.LoginRepository.CreateCentreLogin(ctx, auth.CentreLogin{
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hash),
		CentreName: req.CentreName,
		CentreCode: req.CentreCode,
		Role:       auth.RoleCentre,
	})
	if err != nil {
		return auth.PrincipalDTO{}, err
	}

	return auth.PrincipalDTO{
		ID:         created.ID,
		Email:      created.Email,
		Name:       created.CentreName,
		CentreCode: &created.CentreCode,
	}, nil
}

// LoginEmployee implements auth.AuthService.
func (a *AuthServiceImpl) LoginEmployee(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	login, err := a.LoginRepository.GetEmployeeLoginByEmail(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(login.Password), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	// Credentials exist before approval, but the account is unusable until
	// an admin approves the profile.
	if login.Status != "Approved" {
		return auth.LoginResponse{}, auth.ErrAccountNotApproved
	}

	name := login.FirstName + " " + login.LastName
	token, refresh, err := a.issueTokens(jwt.PrincipalClaims{
		SubjectID:  login.ID,
		Email:      login.Email,
		Name:       name,
		Role:       login.Role,
		EmployeeID: &login.EmployeeID,
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token:        token,
		RefreshToken: refresh,
		Role:         string(login.Role),
		Principal: auth.PrincipalDTO{
			ID:         login.ID,
			Email:      login.Email,
			Name:       name,
			EmployeeID: &login.EmployeeID,
		},
	}, nil
}

// LoginCentre implements auth.AuthService.
func (a *AuthServiceImpl) LoginCentre(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	login, err := a.LoginRepository.GetCentreLoginByEmail(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(login.Password), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, refresh, err := a.issueTokens(jwt.PrincipalClaims{
		SubjectID:  login.ID,
		Email:      login.Email,
		Name:       login.CentreName,
		Role:       login.Role,
		CentreCode: &login.CentreCode,
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token:        token,
		RefreshToken: refresh,
		Role:         string(login.Role),
		Principal: auth.PrincipalDTO{
			ID:         login.ID,
			Email:      login.Email,
			Name:       login.CentreName,
			CentreCode: &login.CentreCode,
		},
	}, nil
}

// LoginAdmin implements auth.AuthService.
func (a *AuthServiceImpl) LoginAdmin(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	login, err := a.LoginRepository.GetAdminLoginByAdminID(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(login.Password), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, refresh, err := a.issueTokens(jwt.PrincipalClaims{
		SubjectID: login.ID,
		Email:     login.Email,
		Name:      login.Name,
		Role:      login.Role,
		AdminID:   &login.AdminID,
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token:        token,
		RefreshToken: refresh,
		Role:         string(login.Role),
		Principal: auth.PrincipalDTO{
			ID:      login.ID,
			Email:   login.Email,
			Name:    login.Name,
			AdminID: &login.AdminID,
		},
	}, nil
}

func (a *AuthServiceImpl) issueTokens(claims jwt.PrincipalClaims) (access, refresh string, err error) {
	access, _, err = a.jwtSvc.GenerateAccessToken(claims)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, _, err = a.jwtSvc.GenerateRefreshToken(claims)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return access, refresh, nil
}

// Refresh implements auth.AuthService. The presented refresh token stays
// valid until logout or expiry; only the access token is re-issued fresh
// alongside it.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	claims, err := a.jwtSvc.ParseRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	token, _, err := a.jwtSvc.GenerateAccessToken(claims)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Token:        token,
		RefreshToken: req.RefreshToken,
		Role:         string(claims.Role),
		Principal: auth.PrincipalDTO{
			ID:         claims.SubjectID,
			Email:      claims.Email,
			Name:       claims.Name,
			EmployeeID: claims.EmployeeID,
			CentreCode: claims.CentreCode,
			AdminID:    claims.AdminID,
		},
	}, nil
}

// ChangePassword implements auth.AuthService. Unlike the OTP flow this one
// requires the current password, so it needs no out-of-band code.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	currentHash, err := a.passwordHashByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(currentHash), []byte(req.OldPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.LoginRepository.UpdatePasswordByEmail(ctx, req.Email, string(hash))
}

func (a *AuthServiceImpl) passwordHashByEmail(ctx context.Context, email string) (string, error) {
	if login, err := a.LoginRepository.GetEmployeeLoginByEmail(ctx, email); err == nil {
		return login.Password, nil
	}
	if login, err := a.LoginRepository.GetCentreLoginByEmail(ctx, email); err == nil {
		return login.Password, nil
	}
	if login, err := a.LoginRepository.GetAdminLoginByEmail(ctx, email); err == nil {
		return login.Password, nil
	}
	return "", auth.ErrAccountNotFound
}

// ListCentres implements auth.AuthService.
func (a *AuthServiceImpl) ListCentres(ctx context.Context) ([]auth.CentreResponse, error) {
	centres, err := a.LoginRepository.ListCentres(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]auth.CentreResponse, 0, len(centres))
	for _, c := range centres {
		result = append(result, auth.CentreResponse{
			ID:         c.ID,
			Username:   c.Username,
			Email:      c.Email,
			CentreName: c.CentreName,
			CentreCode: c.CentreCode,
		})
	}

	return result, nil
}

// ForgotPassword implements auth.AuthService.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if !a.emailKnown(ctx, req.Email) {
		// Same outcome as the success path, so response timing and shape
		// do not reveal whether the address exists.
		slog.Info("password reset requested for unknown email")
		return nil
	}

	code, err := a.otpStore.Issue(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to issue OTP: %w", err)
	}

	if err := a.emailSvc.SendPasswordResetOTP(req.Email, code, "10 minutes"); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	return nil
}

func (a *AuthServiceImpl) emailKnown(ctx context.Context, email string) bool {
	if _, err := a.LoginRepository.GetEmployeeLoginByEmail(ctx, email); err == nil {
		return true
	}
	if _, err := a.LoginRepository.GetCentreLoginByEmail(ctx, email); err == nil {
		return true
	}
	if _, err := a.LoginRepository.GetAdminLoginByEmail(ctx, email); err == nil {
		return true
	}
	return false
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	ok, err := a.otpStore.Verify(ctx, req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, otp.ErrNotFound) {
			return auth.ErrInvalidOTP
		}
		return fmt.Errorf("failed to verify OTP: %w", err)
	}
	if !ok {
		return auth.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.LoginRepository.UpdatePasswordByEmail(ctx, req.Email, string(hash))
}

func NewAuthService(
	db *database.DB,
	loginRepository auth.LoginRepository,
	jwtService jwt.Service,
	otpStore *otp.Store,
	emailService email.EmailService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:              db,
		LoginRepository: loginRepository,
		jwtSvc:          jwtService,
		otpStore:        otpStore,
		emailSvc:        emailService,
	}
}
