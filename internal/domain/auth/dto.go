package auth

import "github.com/emscore/ems-backend-go/internal/pkg/validator"

const minPasswordLength = 8

func validatePassword(errs validator.ValidationErrors, password string) validator.ValidationErrors {
	if validator.IsEmpty(password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(password) < minPasswordLength {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters long"})
	}
	return errs
}

type RegisterEmployeeRequest struct {
	EmployeeID string  `json:"employee_id"`
	CenterCode *string `json:"center_code,omitempty"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	errs = validatePassword(errs, r.Password)
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterCentreRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	CentreName string `json:"centre_name"`
	CentreCode string `json:"centre_code"`
}

func (r *RegisterCentreRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	errs = validatePassword(errs, r.Password)
	if validator.IsEmpty(r.CentreName) {
		errs = append(errs, validator.ValidationError{Field: "centre_name", Message: "centre_name is required"})
	}
	if validator.IsEmpty(r.CentreCode) {
		errs = append(errs, validator.ValidationError{Field: "centre_code", Message: "centre_code is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LoginRequest authenticates any of the three principals; the handler picks
// the principal from the route.
type LoginRequest struct {
	// Identifier is the email for employees and centres, the admin ID for
	// administrators.
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Identifier) {
		errs = append(errs, validator.ValidationError{Field: "identifier", Message: "identifier is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	Role         string       `json:"role"`
	Principal    PrincipalDTO `json:"principal"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{Field: "refresh_token", Message: "refresh_token is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ChangePasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if validator.IsEmpty(r.OldPassword) {
		errs = append(errs, validator.ValidationError{Field: "old_password", Message: "old_password is required"})
	}
	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new_password is required"})
	} else if len(r.NewPassword) < minPasswordLength {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new_password must be at least 8 characters long"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CentreResponse is a centre record rendered for listings; the password
// hash never leaves the repository layer.
type CentreResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	CentreName string `json:"centre_name"`
	CentreCode string `json:"centre_code"`
}

// PrincipalDTO is the token subject rendered for the client; fields not
// applicable to the principal kind are omitted.
type PrincipalDTO struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	EmployeeID *string `json:"employee_id,omitempty"`
	CentreCode *string `json:"centre_code,omitempty"`
	AdminID    *string `json:"admin_id,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r *ForgotPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if len(r.OTP) != 6 || !validator.IsNumeric(r.OTP) {
		errs = append(errs, validator.ValidationError{Field: "otp", Message: "otp must be 6 digits"})
	}
	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new_password is required"})
	} else if len(r.NewPassword) < minPasswordLength {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new_password must be at least 8 characters long"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
