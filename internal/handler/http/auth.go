package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-flix/internal/app"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/utils"
	"github.com/MKhiriev/go-flix/internal/validators"
	"github.com/MKhiriev/go-flix/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if errors.Is(err, validators.ErrMissingFields) {
		writeErrorMessage(w, r, err, http.StatusBadRequest, app.MsgRegisterFieldsRequired)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user registered")
	_, _ = utils.WriteJSON(w, models.RegisterResponse{
		Success: true,
		Message: app.MsgRegistered,
		User:    user,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, user, err := h.services.AuthService.Login(ctx, req)
	if errors.Is(err, validators.ErrMissingFields) {
		writeErrorMessage(w, r, err, http.StatusBadRequest, app.MsgLoginFieldsRequired)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: app.MsgLoggedIn,
		Token:   token,
		User:    user,
	}, http.StatusOK)
}

// verify reports the identity carried by the bearer token. The credential
// store is not consulted.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	claims, err := h.services.AuthService.Verify(r.Context(), tokenString)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.VerifyResponse{
		Success: true,
		User:    claims.Identity(),
	}, http.StatusOK)
}

// decodeJSON reads a single JSON object from the request body. Any read or
// syntax failure is reported as ErrInvalidJSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
