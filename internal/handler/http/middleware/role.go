package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/emscore/ems-backend-go/internal/domain/auth"
	"github.com/emscore/ems-backend-go/internal/handler/http/response"
)

// RequireRole allows only the listed roles through.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			role := auth.Role(roleStr)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "Insufficient permissions")
		})
	}
}

// RequireAdmin requires admin or super-admin role
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(auth.RoleAdmin, auth.RoleSuperAdmin)(next)
}
