package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-flix/internal/app"
	"github.com/MKhiriev/go-flix/internal/crypto"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/internal/store"
	"github.com/MKhiriev/go-flix/internal/utils"
	"github.com/MKhiriev/go-flix/internal/validators"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is ordered: more specific errors come before the errors
// they wrap.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrNoToken, http.StatusUnauthorized, app.MsgNoTokenProvided},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgInvalidToken},

	{validators.ErrInvalidEmail, http.StatusBadRequest, app.MsgInvalidEmail},
	{validators.ErrFieldTooLong, http.StatusBadRequest, app.MsgFieldTooLong},
	{crypto.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{validators.ErrValidation, http.StatusBadRequest, app.MsgInvalidRequest},

	{store.ErrUserAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyExists},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidToken},

	{service.ErrUnknownCategory, http.StatusBadRequest, app.MsgUnknownCategory},
	{service.ErrInvalidMovieID, http.StatusBadRequest, app.MsgInvalidMovieID},
	{service.ErrMovieNotFound, http.StatusNotFound, app.MsgMovieNotFound},
	{service.ErrCatalogUnavailable, http.StatusBadGateway, app.MsgCatalogUnavailable},
}

// responseFromError returns the status and public message for err. Unknown
// errors map to 500 with a generic message.
func responseFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the error envelope for err. Server-side failures
// are logged with their cause; client errors only at debug level.
// A request whose context has already expired is answered with 504
// regardless of err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(r.Context().Err(), context.DeadlineExceeded) {
		writeErrorMessage(w, r, err, http.StatusGatewayTimeout, app.MsgRequestTimeout)
		return
	}

	status, message := responseFromError(err)
	writeErrorMessage(w, r, err, status, message)
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, err error, status int, message string) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
