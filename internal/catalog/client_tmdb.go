package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/models"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "en-US"
)

var categoryPaths = map[models.MovieCategory]string{
	models.Trending: "/trending/movie/week",
	models.Popular:  "/movie/popular",
	models.TopRated: "/movie/top_rated",
	models.Upcoming: "/movie/upcoming",
}

// TMDBClient is the resty-backed [Client] for the TMDB v3 API.
type TMDBClient struct {
	client   *resty.Client
	apiKey   string
	language string
	logger   *logger.Logger
}

// NewTMDBClient builds a client from cfg. Empty BaseURL and Language fall
// back to the public TMDB endpoint and "en-US".
func NewTMDBClient(cfg config.Catalog, log *logger.Logger) *TMDBClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	language := cfg.Language
	if language == "" {
		language = defaultLanguage
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		cli.SetTimeout(cfg.Timeout)
	}

	return &TMDBClient{
		client:   cli,
		apiKey:   cfg.APIKey,
		language: language,
		logger:   log,
	}
}

// Configured reports whether an API key is set.
func (c *TMDBClient) Configured() bool {
	return c.apiKey != ""
}

func (c *TMDBClient) Trending(ctx context.Context) (models.MoviePage, error) {
	return c.List(ctx, models.Trending)
}

func (c *TMDBClient) Popular(ctx context.Context) (models.MoviePage, error) {
	return c.List(ctx, models.Popular)
}

func (c *TMDBClient) TopRated(ctx context.Context) (models.MoviePage, error) {
	return c.List(ctx, models.TopRated)
}

func (c *TMDBClient) Upcoming(ctx context.Context) (models.MoviePage, error) {
	return c.List(ctx, models.Upcoming)
}

func (c *TMDBClient) List(ctx context.Context, category models.MovieCategory) (models.MoviePage, error) {
	path, ok := categoryPaths[category]
	if !ok {
		return models.MoviePage{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	var page models.MoviePage
	if err := c.get(ctx, path, &page); err != nil {
		return models.MoviePage{}, fmt.Errorf("list %s: %w", category, err)
	}
	return page, nil
}

func (c *TMDBClient) MovieDetails(ctx context.Context, movieID int64) (models.MovieDetails, error) {
	var details models.MovieDetails
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(movieID, 10), &details); err != nil {
		return models.MovieDetails{}, fmt.Errorf("movie %d: %w", movieID, err)
	}
	return details, nil
}

func (c *TMDBClient) get(ctx context.Context, path string, result any) error {
	if !c.Configured() {
		return ErrNoAPIKey
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key":  c.apiKey,
			"language": c.language,
		}).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequest, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return ErrMovieNotFound
	case resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices:
		c.logger.Warn().
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("catalog answered with an error status")
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	return nil
}
