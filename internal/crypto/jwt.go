package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims represents the JWT claims carried by a bloglist identity token.
// The username and user id are what downstream code needs to resolve the
// caller; everything else is standard registered claims.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	UserID   string `json:"id"`
}

// GenerateToken creates a signed identity token for the given user.
// Expiry is issuedAt + expiry; one week in production configuration.
func GenerateToken(userID, username, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "bloglist",
			Audience:  jwt.ClaimStrings{"bloglist-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
		UserID:   userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a token string, returning the claims if
// valid. Malformed, tampered and expired tokens all collapse into
// ErrInvalidToken; callers never learn which check failed.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("bloglist"), jwt.WithAudience("bloglist-api"))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
