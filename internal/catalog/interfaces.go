// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog talks to the TMDB movie database on behalf of go-flix.
//
// [TMDBClient] fetches the four home page lists and single-movie details,
// [ImageURL] builds poster and backdrop URLs, and [Cache] stores fetched
// lists so that repeated page loads do not reach TMDB. Two caches are
// provided: [RedisCache] for shared deployments and [MemoryCache] for a single
// process.
package catalog

import (
	"context"
	"time"

	"github.com/MKhiriev/go-flix/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_mock.go -package=mock

// Client is the read-only movie catalog.
type Client interface {
	// List returns the first page of the given list.
	// Unknown categories return ErrUnknownCategory without a request.
	List(ctx context.Context, category models.MovieCategory) (models.MoviePage, error)

	// MovieDetails returns the full record of a single movie.
	// Returns ErrMovieNotFound when the catalog has no such id.
	MovieDetails(ctx context.Context, movieID int64) (models.MovieDetails, error)
}

// Cache is a byte-oriented TTL cache. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns the cached value and true, or false on a miss or expiry.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl. A non-positive ttl stores nothing.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases the underlying connection, if any.
	Close() error
}
