package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/emscore/ems-backend-go/internal/domain/auth"
)

// ErrInvalidRefreshToken covers expired, malformed and wrong-type tokens
// presented to the refresh flow.
var ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

const acceptableSkew = 30 * time.Second

// PrincipalClaims is everything a token carries about its subject. Exactly
// one of EmployeeID, CentreCode, AdminID is set, matching the role.
type PrincipalClaims struct {
	SubjectID  string
	Email      string
	Name       string
	Role       auth.Role
	EmployeeID *string
	CentreCode *string
	AdminID    *string
}

type Service interface {
	GenerateAccessToken(claims PrincipalClaims) (token string, expiresAt int64, err error)
	GenerateRefreshToken(claims PrincipalClaims) (token string, expiresAt int64, err error)
	ParseRefreshToken(ctx context.Context, token string) (PrincipalClaims, error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(ctx context.Context, token string) error
	IsTokenRevoked(ctx context.Context, token string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revocations                RevocationStore
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey, accessTokenExpirationTime, refreshTokenExpirationTime string, revocations RevocationStore) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(acceptableSkew)),
		revocations:                revocations,
	}
}

func (j *JWTService) GenerateAccessToken(claims PrincipalClaims) (token string, expiresAt int64, err error) {
	return j.generateToken(claims, "access", j.accessTokenExpirationTime)
}

func (j *JWTService) GenerateRefreshToken(claims PrincipalClaims) (token string, expiresAt int64, err error) {
	return j.generateToken(claims, "refresh", j.refreshTokenExpirationTime)
}

func (j *JWTService) generateToken(claims PrincipalClaims, tokenType, expiration string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(expiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	tokenClaims := map[string]interface{}{
		"sub":         claims.SubjectID,
		"email":       claims.Email,
		"name":        claims.Name,
		"role":        string(claims.Role),
		"employee_id": returnValueOrNil(claims.EmployeeID),
		"centre_code": returnValueOrNil(claims.CentreCode),
		"admin_id":    returnValueOrNil(claims.AdminID),
		"type":        tokenType,
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(tokenClaims)
	return tokenString, expiresAt, err
}

// ParseRefreshToken verifies a refresh token and recovers its subject so a
// new access token can be issued. Revoked tokens are rejected.
func (j *JWTService) ParseRefreshToken(ctx context.Context, tokenString string) (PrincipalClaims, error) {
	if j.IsTokenRevoked(ctx, tokenString) {
		return PrincipalClaims{}, ErrInvalidRefreshToken
	}

	tok, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return PrincipalClaims{}, ErrInvalidRefreshToken
	}

	if err := jwt.Validate(tok, jwt.WithAcceptableSkew(acceptableSkew)); err != nil {
		return PrincipalClaims{}, ErrInvalidRefreshToken
	}

	if tokenType, _ := stringClaim(tok, "type"); tokenType != "refresh" {
		return PrincipalClaims{}, ErrInvalidRefreshToken
	}

	email, _ := stringClaim(tok, "email")
	name, _ := stringClaim(tok, "name")
	role, _ := stringClaim(tok, "role")

	return PrincipalClaims{
		SubjectID:  tok.Subject(),
		Email:      email,
		Name:       name,
		Role:       auth.Role(role),
		EmployeeID: stringClaimPtr(tok, "employee_id"),
		CentreCode: stringClaimPtr(tok, "centre_code"),
		AdminID:    stringClaimPtr(tok, "admin_id"),
	}, nil
}

// RevokeToken blocks the token for the rest of its lifetime. Tokens that
// are already past expiry need no entry.
func (j *JWTService) RevokeToken(ctx context.Context, tokenString string) error {
	tok, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return fmt.Errorf("failed to decode token for revocation: %w", err)
	}

	ttl := time.Until(tok.Expiration()) + acceptableSkew
	if ttl <= 0 {
		return nil
	}

	return j.revocations.Revoke(ctx, tokenString, ttl)
}

func (j *JWTService) IsTokenRevoked(ctx context.Context, token string) bool {
	return j.revocations.IsRevoked(ctx, token)
}

func stringClaim(tok jwt.Token, name string) (string, bool) {
	raw, ok := tok.Get(name)
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}

func stringClaimPtr(tok jwt.Token, name string) *string {
	value, ok := stringClaim(tok, name)
	if !ok || value == "" {
		return nil
	}
	return &value
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
