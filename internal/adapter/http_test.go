// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/models"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://api.example.com/", want: "https://api.example.com"},
		{raw: "  ", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.UserName)
		assert.Equal(t, "a@x.io", req.Email)

		writeJSON(t, w, http.StatusCreated, models.RegisterResponse{
			Success: true,
			User:    models.PublicUser{UserID: 1, UserName: "alice", Email: "a@x.io"},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{
		UserName: "alice", Email: "a@x.io", Password: "pw1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
}

func TestRegister_Duplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Message: "Username or email already exists"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{})

	require.ErrorIs(t, err, ErrBadRequest)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Username or email already exists", apiErr.Message)
	assert.Equal(t, "Username or email already exists", UserMessage(err))
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			Success: true,
			Token:   "tkn",
			User:    models.PublicUser{UserID: 1, UserName: "alice"},
		})
	}))
	defer srv.Close()

	token, user, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{UserName: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "tkn", token)
	assert.Equal(t, "alice", user.UserName)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid username or password"})
	}))
	defer srv.Close()

	_, _, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{UserName: "alice", Password: "x"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid username or password", UserMessage(err))
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Success: true})
	}))
	defer srv.Close()

	_, _, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{UserName: "alice", Password: "x"})

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

// ── Verify ──────────────────────────────────────────────────────────────────

func TestVerify_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.VerifyResponse{
			Success: true,
			User:    models.PublicUser{UserID: 7, UserName: "alice"},
		})
	}))
	defer srv.Close()

	claims, err := newTestAdapter(t, srv.URL).Verify(context.Background(), "tkn")

	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice", claims.UserName)
}

func TestVerify_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid token"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Verify(context.Background(), "bad")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrNetwork)
}

func TestVerify_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, addr).Verify(context.Background(), "tkn")

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, "Network error. Please check your connection.", UserMessage(err))
}

// ── Movies ──────────────────────────────────────────────────────────────────

func TestMovies_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movies/top_rated", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.MoviesResponse{
			Success: true,
			Movies:  []models.Movie{{ID: 1, Title: "Heat"}},
		})
	}))
	defer srv.Close()

	movies, err := newTestAdapter(t, srv.URL).Movies(context.Background(), "tkn", models.TopRated)

	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Heat", movies[0].Title)
}

func TestMovies_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadGateway, models.ErrorResponse{Message: "Movie catalog is unavailable"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Movies(context.Background(), "tkn", models.Popular)

	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestMovieDetails_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movies/id/603", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.MovieResponse{
			Success: true,
			Movie:   models.MovieDetails{Movie: models.Movie{ID: 603, Title: "The Matrix"}, Runtime: 136},
		})
	}))
	defer srv.Close()

	details, err := newTestAdapter(t, srv.URL).MovieDetails(context.Background(), "tkn", 603)

	require.NoError(t, err)
	assert.Equal(t, "The Matrix", details.Title)
	assert.Equal(t, 136, details.Runtime)
}

// ── In-process ──────────────────────────────────────────────────────────────

func TestInProcessServerAdapter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/verify", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid token"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.VerifyResponse{Success: true, User: models.PublicUser{UserID: 3, UserName: "bob"}})
	})

	a := NewInProcessServerAdapter(mux, config.ClientAdapter{}, logger.Nop())

	claims, err := a.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.UserName)

	_, err = a.Verify(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestInProcessServerAdapter_CancelledContext(t *testing.T) {
	called := false
	a := NewInProcessServerAdapter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), config.ClientAdapter{}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Verify(ctx, "tkn")

	assert.Error(t, err)
	assert.False(t, called)
}
