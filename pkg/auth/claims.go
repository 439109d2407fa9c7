package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims carries the storefront identity inside a signed JWT.
type AccessTokenClaims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AccessTokenPayload is the input for minting an access token.
type AccessTokenPayload struct {
	UserID int
	Email  string
	Role   string
	JTI    string
}
