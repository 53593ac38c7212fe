package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-flix/models"
)

// GenerateJWTToken creates an HS256 token for user.
//
// The token carries the custom claims user_id and user_name plus:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if issuer, tokenDuration or signKey is empty or zero.
//
//	token, err := utils.GenerateJWTToken("go-flix", user, 24*time.Hour, "secret")
func GenerateJWTToken(issuer string, user models.PublicUser, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.Claims{
		UserID:   user.UserID,
		UserName: user.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates tokenString and returns its claims.
//
// Validation includes:
//   - the signing method is HS256 and the signature verifies with tokenSignKey
//   - the issuer equals tokenIssuer
//   - exp is present and in the future
//   - user_id and user_name are set
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Claims, error) {
	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 || claims.UserName == "" {
		return models.Claims{}, errors.New("token carries no user identity")
	}

	return claims, nil
}
