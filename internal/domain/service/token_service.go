package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a store-scoped session token. It deliberately
// carries no roles: authorization is "does the token's store match the URL's".
type Claims struct {
	StoreName string `json:"storeName"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited session tokens.
type TokenService interface {
	// Issue creates a token scoped to the given store and owner email.
	Issue(storeName, email string) (string, error)

	// Validate verifies signature and expiry and returns the decoded claims.
	Validate(tokenString string) (*Claims, error)

	// TTL returns how long issued tokens stay valid.
	TTL() time.Duration
}
