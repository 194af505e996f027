package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/transport/http/api"
)

// RequireAdmin gates a subtree to admin accounts.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok {
			unauthorized(w, r)
			return
		}
		if claims.Role != auth.RoleAdmin {
			forbidden(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff admits every authenticated role except plain employees.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok {
			unauthorized(w, r)
			return
		}
		if claims.Role == auth.RoleEmployee {
			forbidden(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSelfOrStaff admits staff, and plain employees only when the
// route's employee id parameter matches their own.
func RequireSelfOrStaff(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				unauthorized(w, r)
				return
			}
			if claims.Role == auth.RoleEmployee {
				id := chi.URLParam(r, param)
				if id == "" || claims.EmployeeID == "" || id != claims.EmployeeID {
					forbidden(w, r)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
}

func forbidden(w http.ResponseWriter, r *http.Request) {
	api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", GetRequestID(r.Context()))
}
