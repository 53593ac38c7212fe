package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown user name and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownCategory    = errors.New("unknown movie category")
	ErrInvalidMovieID     = errors.New("invalid movie id")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrCatalogUnavailable = errors.New("movie catalog is unavailable")

	// ErrUnauthenticated is returned on the client when there is no session
	// or the server no longer accepts its token.
	ErrUnauthenticated = errors.New("not authenticated")
)
