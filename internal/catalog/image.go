package catalog

import "strings"

const (
	// DefaultImageBaseURL is the TMDB image CDN root.
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"

	// Image sizes used by the UI.
	SizeOriginal = "original"
	SizePoster   = "w500"
	SizeBackdrop = "w1280"
)

// ImageURL returns the CDN URL of a poster or backdrop path on the default
// image host. An empty path yields ("", false); an empty size means
// SizeOriginal.
func ImageURL(path, size string) (string, bool) {
	return Images{}.URL(path, size)
}

// Images builds image URLs against a configurable CDN root.
type Images struct {
	BaseURL string
}

// URL is ImageURL against i.BaseURL. An empty BaseURL means
// DefaultImageBaseURL.
func (i Images) URL(path, size string) (string, bool) {
	if path == "" {
		return "", false
	}
	if size == "" {
		size = SizeOriginal
	}
	base := strings.TrimRight(i.BaseURL, "/")
	if base == "" {
		base = DefaultImageBaseURL
	}
	return base + "/" + size + path, true
}
