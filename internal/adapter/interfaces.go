// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the go-flix API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the protocol. [NewHTTPServerAdapter] talks to a remote server
// over HTTP; [NewInProcessServerAdapter] serves the same requests from an
// in-process handler, so both modes share one wire format and one set of
// error semantics.
//
// Non-2xx answers are returned as [*APIError], which wraps a status sentinel
// from errors.go so callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401). A request that got no response at all wraps [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-flix/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the go-flix
// server. Authenticated calls take the bearer token explicitly; the adapter
// keeps no session state.
type ServerAdapter interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)

	// Login returns the issued token and the user's public profile.
	Login(ctx context.Context, req models.LoginRequest) (string, models.PublicUser, error)

	// Verify asks the server whether token is still valid and returns the
	// identity it carries.
	Verify(ctx context.Context, token string) (models.Claims, error)

	// Movies returns one catalog list.
	Movies(ctx context.Context, token string, category models.MovieCategory) ([]models.Movie, error)

	// MovieDetails returns the full record of one movie.
	MovieDetails(ctx context.Context, token string, movieID int64) (models.MovieDetails, error)
}
