package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/humbingo/hrms-backend-go/internal/domain/auth"
	"github.com/humbingo/hrms-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CurrentUserID extracts the authenticated user's ID from JWT claims.
func CurrentUserID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	return userID, ok && userID != ""
}

// CurrentEmployeeID extracts the linked employee ID from JWT claims.
// Admins without an employee record return false.
func CurrentEmployeeID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	employeeID, ok := claims["employee_id"].(string)
	return employeeID, ok && employeeID != ""
}

// IsAdmin reports whether the authenticated user carries the admin claim.
func IsAdmin(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	admin, ok := claims["is_admin"].(bool)
	return ok && admin
}
