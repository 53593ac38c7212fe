// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used when reading the "Authorization" HTTP header. Callers
// can match against them with [errors.Is].
var (
	// ErrNoToken is returned when the request carries no "Authorization"
	// header or the header has no token part.
	ErrNoToken = errors.New("no token provided")

	// ErrInvalidAuthorizationHeader is returned when the header is present
	// but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")
)
