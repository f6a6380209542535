package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinicore/internal/domain/entity"
	"clinicore/pkg/jwt"
	"clinicore/pkg/response"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserTypeKey contextKey = "user_type"
	RoleKey     contextKey = "role"
	TokenIDKey  contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate verifies the bearer token and loads the claims into the
// request context. Verification is purely cryptographic; there is no server
// side token store to consult.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserTypeKey, claims.UserType)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts the identity id from context
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// GetUserTypeFromContext extracts the user specialization from context
func GetUserTypeFromContext(ctx context.Context) (entity.UserType, bool) {
	userType, ok := ctx.Value(UserTypeKey).(entity.UserType)
	return userType, ok
}

// GetRoleFromContext extracts the staff role from context
func GetRoleFromContext(ctx context.Context) (entity.StaffRole, bool) {
	role, ok := ctx.Value(RoleKey).(entity.StaffRole)
	return role, ok
}

// GetTokenIDFromContext extracts the token id from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
