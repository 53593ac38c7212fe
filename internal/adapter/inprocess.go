package adapter

import (
	"net/http"
	"net/http/httptest"
)

// inProcessTransport is an http.RoundTripper that hands every request to an
// http.Handler instead of the network.
type inProcessTransport struct {
	handler http.Handler
}

func (t inProcessTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	rec := httptest.NewRecorder()
	t.handler.ServeHTTP(rec, req)

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}
