package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotApproved = errors.New("account is pending approval")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUsernameTaken      = errors.New("username is already registered")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
