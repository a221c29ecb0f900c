package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/emscore/ems-backend-go/internal/handler/http/response"
	"github.com/emscore/ems-backend-go/internal/pkg/jwt"
)

// AuthRequired verifies the token parsed by jwtauth.Verifier is a live
// access token. Revocation is checked here so a logged-out token dies at
// the door regardless of the route behind it.
func AuthRequired(jwtSvc jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			if raw := jwtauth.TokenFromHeader(r); raw != "" && jwtSvc.IsTokenRevoked(r.Context(), raw) {
				response.Unauthorized(w, "Token has been revoked")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
