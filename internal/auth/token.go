package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ayurcare_backend/internal/models"
)

// ErrInvalidToken covers every token failure: malformed input, bad
// signature, and expiry. Callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by an access token. Subject is the account id.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed HS256 access token for the account with an
// absolute expiry of now + ttl.
func GenerateToken(secret []byte, accountID string, role models.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the claims. Any
// failure maps to ErrInvalidToken.
func ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
