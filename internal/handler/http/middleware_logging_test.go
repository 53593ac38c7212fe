package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// injectLogger puts a zerolog.Logger into the request context the same way
// withTraceID does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
		wantSize  int
	}{
		{name: "ok", status: http.StatusOK, body: "OK", wantLevel: "info", wantSize: 2},
		{name: "created", status: http.StatusCreated, body: `{"success":true}`, wantLevel: "info", wantSize: 16},
		{name: "client error", status: http.StatusUnauthorized, body: "no", wantLevel: "warn", wantSize: 2},
		{name: "server error", status: http.StatusBadGateway, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := injectLogger(httptest.NewRequest(http.MethodPost, "/api/login?x=1", nil), zerolog.New(&buf))
			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "/api/login?x=1", entry["uri"])
			assert.Equal(t, "POST", entry["method"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	req := injectLogger(httptest.NewRequest(http.MethodGet, "/", nil), zerolog.New(&buf))
	h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}
