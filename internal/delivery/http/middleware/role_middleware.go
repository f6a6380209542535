package middleware

import (
	"net/http"

	"clinicore/internal/domain/entity"
	"clinicore/pkg/response"
)

// RequireRole checks that the caller is staff with one of the allowed roles.
// Role is read from context (set by AuthMiddleware from JWT claims).
func RequireRole(allowedRoles ...entity.StaffRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userType, ok := GetUserTypeFromContext(r.Context())
			if !ok || userType != entity.UserTypeStaff {
				response.Forbidden(w, "Staff access required")
				return
			}

			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff admits any staff member regardless of role.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userType, ok := GetUserTypeFromContext(r.Context())
		if !ok || userType != entity.UserTypeStaff {
			response.Forbidden(w, "Staff access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireClerk is a convenience middleware for clerk or admin endpoints
func RequireClerk(next http.Handler) http.Handler {
	return RequireRole(entity.RoleClerk, entity.RoleAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor or admin endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor, entity.RoleAdmin)(next)
}

// RequireRadiologist is a convenience middleware for radiologist or admin endpoints
func RequireRadiologist(next http.Handler) http.Handler {
	return RequireRole(entity.RoleRadiologist, entity.RoleAdmin)(next)
}

// RequireClinician admits doctors and radiologists
func RequireClinician(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor, entity.RoleRadiologist, entity.RoleAdmin)(next)
}
