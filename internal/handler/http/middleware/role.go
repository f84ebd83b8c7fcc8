package middleware

import (
	"fmt"
	"net/http"

	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/response"
)

// RequireOwner requires owner role
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := CallerFromContext(r.Context())
		if !caller.IsAuthenticated() {
			response.HandleError(w, user.ErrUnauthenticated)
			return
		}
		if !caller.IsOwner() {
			response.HandleError(w, user.ErrOwnerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePermission checks if user has specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := CallerFromContext(r.Context())
			if !caller.IsAuthenticated() {
				response.HandleError(w, user.ErrUnauthenticated)
				return
			}

			if !caller.Can(permission) {
				response.Forbidden(w, response.CodeForbidden, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, caller.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
