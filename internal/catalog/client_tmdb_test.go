package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/models"
)

func newTestTMDB(t *testing.T, handler http.HandlerFunc) (*TMDBClient, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return NewTMDBClient(config.Catalog{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/",
		Timeout: time.Second,
	}, logger.Nop()), &calls
}

func TestTMDBClient_ListPaths(t *testing.T) {
	tests := []struct {
		category models.MovieCategory
		call     func(*TMDBClient, context.Context) (models.MoviePage, error)
		path     string
	}{
		{models.Trending, (*TMDBClient).Trending, "/trending/movie/week"},
		{models.Popular, (*TMDBClient).Popular, "/movie/popular"},
		{models.TopRated, (*TMDBClient).TopRated, "/movie/top_rated"},
		{models.Upcoming, (*TMDBClient).Upcoming, "/movie/upcoming"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			client, _ := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
				assert.Equal(t, "en-US", r.URL.Query().Get("language"))

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(models.MoviePage{
					Page:    1,
					Results: []models.Movie{{ID: 7, Title: "Heat", VoteAverage: 7.9}},
				})
			})

			page, err := tt.call(client, context.Background())
			require.NoError(t, err)
			require.Len(t, page.Results, 1)
			assert.Equal(t, "Heat", page.Results[0].Title)
		})
	}
}

func TestTMDBClient_UnknownCategory(t *testing.T) {
	client, calls := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.List(context.Background(), "westerns")

	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Zero(t, calls.Load())
}

func TestTMDBClient_NoAPIKey(t *testing.T) {
	client := NewTMDBClient(config.Catalog{BaseURL: "http://127.0.0.1:1"}, logger.Nop())

	_, err := client.List(context.Background(), models.Popular)

	assert.False(t, client.Configured())
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestTMDBClient_MovieDetails(t *testing.T) {
	client, _ := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":603,"title":"The Matrix","runtime":136,"genres":[{"id":28,"name":"Action"}]}`))
	})

	details, err := client.MovieDetails(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", details.Title)
	assert.Equal(t, 136, details.Runtime)
	assert.Equal(t, []models.Genre{{ID: 28, Name: "Action"}}, details.Genres)

	_, err = client.MovieDetails(context.Background(), 1)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestTMDBClient_ErrorStatus(t *testing.T) {
	client, _ := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Trending(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestTMDBClient_ContextCancelled(t *testing.T) {
	client, _ := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Popular(ctx)
	assert.ErrorIs(t, err, ErrRequest)
}
