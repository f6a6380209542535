package jwt

import (
	"errors"
	"time"

	"clinicore/config"
	"clinicore/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carry the identity id and specialization of the authenticated user.
// Verification is stateless: a token stays valid until expiry even if the
// account is deactivated after issuance.
type Claims struct {
	UserID   int64            `json:"user_id"`
	UserType entity.UserType  `json:"user_type"`
	Role     entity.StaffRole `json:"role,omitempty"`
	TokenID  string           `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateAccessToken issues a signed bearer token for the given identity.
func (s *JWTService) GenerateAccessToken(userID int64, userType entity.UserType, role entity.StaffRole) (string, error) {
	claims := Claims{
		UserID:   userID,
		UserType: userType,
		Role:     role,
		TokenID:  uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

// ValidateToken checks signature and expiry and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}
