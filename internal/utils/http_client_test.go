package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost", time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost", client.BaseURL)
	assert.Equal(t, time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_ZeroTimeout(t *testing.T) {
	client := NewHTTPClient("http://localhost", 0)

	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_UsesBaseURL(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/api/version")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "/api/version", gotPath)
	assert.Equal(t, "application/json", gotAccept)
}
