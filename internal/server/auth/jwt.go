// Package auth issues and verifies the signed session tokens that stand in
// for server-side sessions. Tokens are HS256 JWTs carrying the account id as
// subject plus a role claim; nothing is ever stored server-side.
package auth

import (
	"errors"
	"time"

	"github.com/campushub/campushub/internal/common"
	"github.com/campushub/campushub/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token claim set: registered claims plus the account role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Issuer signs and verifies tokens with a single symmetric secret. It is
// constructed once at startup and safe for concurrent use.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue mints a token for the account with exp = iat + ttl.
func (i *Issuer) Issue(accountID string, role models.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Role: string(role),
	})

	return token.SignedString(i.secret)
}

// Verify checks the signature and expiry and returns the embedded claims.
// Failures map onto the closed set common.ErrTokenExpired,
// common.ErrTokenInvalidSignature, and common.ErrTokenMalformed.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenInvalidSignature
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrTokenMalformed
	}

	return claims, nil
}
