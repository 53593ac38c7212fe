package catalog

import "errors"

var (
	ErrNoAPIKey         = errors.New("catalog api key is not configured")
	ErrUnknownCategory  = errors.New("unknown movie category")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrUnexpectedStatus = errors.New("unexpected catalog response status")
	ErrRequest          = errors.New("catalog request failed")
	ErrCache            = errors.New("catalog cache error")
)
