package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/enneatest/api/internal/policy"
)

var jwtSecret []byte

// Init sets the HMAC signing secret. Call once at startup before any
// token is issued or verified.
func Init(secret string) {
	jwtSecret = []byte(secret)
}

type Claims struct {
	UserID string      `json:"id"`
	Role   policy.Role `json:"role"`
	jwt.RegisteredClaims
}

// Tokens stay valid for one day from issuance.
const tokenTTL = 24 * time.Hour

// GenerateToken issues an HS256 JWT carrying the account id and role.
func GenerateToken(accountID string, role policy.Role) (string, error) {
	claims := &Claims{
		UserID: accountID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a bearer token and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}
	return claims, nil
}
