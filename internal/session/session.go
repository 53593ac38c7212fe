// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client's login state.
//
// A [Session] is loaded once from local storage at startup. From then on the
// in-memory copy is authoritative and changes only through SetAuthData and
// Logout, which write through to storage before updating memory.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/store"
	"github.com/MKhiriev/go-flix/models"
)

// Storage keys.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Session is safe for concurrent use.
type Session struct {
	storage store.LocalStorage
	logger  *logger.Logger

	mu    sync.RWMutex
	token string
	user  models.PublicUser
}

// Load reads the persisted token and profile. A half-written or corrupt
// state (token without a readable profile, or the reverse) is cleared and
// the session starts logged out.
func Load(ctx context.Context, storage store.LocalStorage, logger *logger.Logger) (*Session, error) {
	s := &Session{storage: storage, logger: logger}

	token, hasToken, err := storage.Get(ctx, TokenKey)
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}
	rawUser, hasUser, err := storage.Get(ctx, UserKey)
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}

	if !hasToken && !hasUser {
		return s, nil
	}

	var user models.PublicUser
	if hasToken && token != "" && hasUser {
		if err = json.Unmarshal([]byte(rawUser), &user); err == nil {
			s.token = token
			s.user = user
			return s, nil
		}
	}

	logger.Warn().Bool("has_token", hasToken).Bool("has_user", hasUser).Msg("discarding unreadable session")
	if err = storage.Delete(ctx, TokenKey, UserKey); err != nil {
		return nil, fmt.Errorf("clear unreadable session: %w", err)
	}
	return s, nil
}

// IsAuthenticated reports whether a token is held. It does not check the
// token; that is the route guard's job.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser returns the profile stored at login.
func (s *Session) CurrentUser() (models.PublicUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.token != ""
}

// SetAuthData persists token and user in one transaction, then switches the
// in-memory state.
func (s *Session) SetAuthData(ctx context.Context, token string, user models.PublicUser) error {
	if token == "" {
		return fmt.Errorf("set auth data: empty token")
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.storage.SetMany(ctx, map[string]string{
		TokenKey: token,
		UserKey:  string(rawUser),
	}); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.token = token
	s.user = user
	return nil
}

// Logout removes both keys and clears memory. The in-memory state is cleared
// even when storage fails, so the process never keeps acting as the user.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = models.PublicUser{}

	if err := s.storage.Delete(ctx, TokenKey, UserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
