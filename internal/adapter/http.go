package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/utils"
	"github.com/MKhiriev/go-flix/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// NewInProcessServerAdapter returns a [ServerAdapter] whose requests are
// served by handler inside the current process. It is the "stub" backend:
// the same router, services and JSON envelopes as the real server, with an
// in-memory Credential Store behind them.
func NewInProcessServerAdapter(handler http.Handler, adapterCfg config.ClientAdapter, logger *logger.Logger) ServerAdapter {
	client := utils.NewHTTPClient("http://go-flix.local", adapterCfg.RequestTimeout)
	client.SetTransport(inProcessTransport{handler: handler})

	return &httpServerAdapter{
		client: client,
		logger: logger,
	}
}

// normalizeBaseURL accepts "host:port" as well as a full URL.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	var body models.RegisterResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&body).
		Post("/api/register")
	if err != nil {
		return models.PublicUser{}, networkError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Msg("register rejected")
		return models.PublicUser{}, err
	}

	return body.User, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, models.PublicUser, error) {
	var body models.LoginResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&body).
		Post("/api/login")
	if err != nil {
		return "", models.PublicUser{}, networkError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Msg("login rejected")
		return "", models.PublicUser{}, err
	}
	if body.Token == "" {
		return "", models.PublicUser{}, fmt.Errorf("login response: %w", ErrUnexpectedStatus)
	}

	return body.Token, body.User, nil
}

func (h *httpServerAdapter) Verify(ctx context.Context, token string) (models.Claims, error) {
	var body models.VerifyResponse
	resp, err := h.authedRequest(ctx, token).
		SetResult(&body).
		Get("/api/verify")
	if err != nil {
		return models.Claims{}, networkError("verify request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Claims{}, err
	}

	return models.Claims{UserID: body.User.UserID, UserName: body.User.UserName}, nil
}

func (h *httpServerAdapter) Movies(ctx context.Context, token string, category models.MovieCategory) ([]models.Movie, error) {
	var body models.MoviesResponse
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("category", string(category)).
		SetResult(&body).
		Get("/api/movies/{category}")
	if err != nil {
		return nil, networkError("movies request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return body.Movies, nil
}

func (h *httpServerAdapter) MovieDetails(ctx context.Context, token string, movieID int64) (models.MovieDetails, error) {
	var body models.MovieResponse
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("movieID", strconv.FormatInt(movieID, 10)).
		SetResult(&body).
		Get("/api/movies/id/{movieID}")
	if err != nil {
		return models.MovieDetails{}, networkError("movie details request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MovieDetails{}, err
	}

	return body.Movie, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
