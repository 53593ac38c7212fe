// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-flix/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the auth middleware stores the
// verified token claims.
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the verified claims stored by WithClaims.
//
//	claims, ok := utils.GetClaimsFromContext(ctx)
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
