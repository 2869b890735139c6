package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the signed-in employee as carried inside the token.
type Identity struct {
	ID         string `json:"id"`
	AccessRole string `json:"accessRole"`
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

// CreateIdentityToken signs a login token for an employee. Workers and
// managers get the same shape; the access role claim is what gates
// manager-only routes.
func CreateIdentityToken(identity Identity, secret []byte, expiresIn time.Duration) (string, error) {
	claims := IdentityClaims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "sitepay",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	// HS256 signing method (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}
