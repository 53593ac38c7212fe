// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flix/internal/adapter"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/models"
)

type routeGuard struct {
	session ClientSession
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewRouteGuard(session ClientSession, serverAdapter adapter.ServerAdapter, logger *logger.Logger) RouteGuard {
	return &routeGuard{session: session, adapter: serverAdapter, logger: logger}
}

func (g *routeGuard) Check(ctx context.Context) (models.Claims, error) {
	if !g.session.IsAuthenticated() {
		return models.Claims{}, ErrUnauthenticated
	}

	claims, err := g.adapter.Verify(ctx, g.session.Token())
	if ctxErr := ctx.Err(); ctxErr != nil {
		return models.Claims{}, ctxErr
	}
	if err == nil {
		return claims, nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		g.logger.Info().Msg("server rejected the session token, logging out")
		if logoutErr := g.session.Logout(ctx); logoutErr != nil {
			g.logger.Err(logoutErr).Msg("clearing rejected session failed")
		}
		return models.Claims{}, ErrUnauthenticated
	}

	// the token was not proven invalid; keep it for the next attempt
	g.logger.Warn().Err(err).Msg("token verification failed")
	return models.Claims{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
}
