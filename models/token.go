package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token: the user identity plus the
// standard registered claims (issuer, issued-at, expiry).
type Claims struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`

	jwt.RegisteredClaims
}

// Token is a freshly issued session token.
//
// SignedString holds the compact JWS form (header.payload.signature) that is
// handed to the client; Claims holds the decoded payload it was built from.
type Token struct {
	Claims       Claims
	SignedString string
}

// Identity returns the public part of the claims.
func (c Claims) Identity() PublicUser {
	return PublicUser{UserID: c.UserID, UserName: c.UserName}
}
