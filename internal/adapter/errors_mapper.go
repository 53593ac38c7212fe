package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-flix/internal/app"
	"github.com/MKhiriev/go-flix/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Message = strings.TrimSpace(body.Message)
	}

	return apiErr
}

func networkError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}

// UserMessage turns an adapter error into the text shown to the user.
//
// A request without a response gives the network message. Otherwise the
// server's own message wins, with a generic fallback per status.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNetwork) {
		return app.MsgNetworkError
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return app.MsgUnknownError
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}

	switch apiErr.StatusCode {
	case http.StatusBadRequest:
		return app.MsgInvalidRequest
	case http.StatusUnauthorized:
		return app.MsgClientInvalidCreds
	case http.StatusInternalServerError:
		return app.MsgServerError
	default:
		return app.MsgUnknownError
	}
}
