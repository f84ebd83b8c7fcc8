package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/response"
	"github.com/konveksi/payroll-backend-go/internal/pkg/jwt"
)

type callerKey struct{}

// AuthRequired runs after jwtauth.Verifier. It rejects requests without a
// valid access token and stores the caller for handlers.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, user.ErrUnauthenticated)
			return
		}

		caller, err := jwt.CallerFromClaims(claims)
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), callerKey{}, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hfn)
}

// CallerFromContext returns the caller stored by AuthRequired, or the zero
// Caller (unauthenticated) when there is none.
func CallerFromContext(ctx context.Context) user.Caller {
	caller, _ := ctx.Value(callerKey{}).(user.Caller)
	return caller
}
