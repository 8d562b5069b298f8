package token

import (
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims binds the session identity carried by a signed token.
type Claims struct {
	jwt.RegisteredClaims
	IDUser   int64           `json:"id_user"`
	Username string          `json:"username"`
	Role     entity.UserRole `json:"role"`
}

// Issue mints a signed HS256 session token for the user. Each token carries a
// unique jti, so two logins in the same second still produce distinct
// credentials; the stored-token equality check in the auth middleware depends
// on that.
func Issue(secret string, expiry time.Duration, user *entity.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiry)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		IDUser:   user.IDUser,
		Username: user.Username,
		Role:     user.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Decode verifies signature, algorithm and expiry and returns the embedded
// claims. It returns nil on ANY failure so callers cannot tell why a token
// was rejected; possession of decodable claims is still not sufficient for
// authentication, the token must also match the one stored on the user row.
func Decode(secret, tokenString string) *Claims {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil
	}

	return claims
}
