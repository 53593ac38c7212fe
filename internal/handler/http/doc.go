// Package http implements the HTTP transport layer of go-flix.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API under /api. Cross-cutting concerns such as authentication, request
// tracing, access logging, response compression, and request timeouts are
// handled in this package before requests are delegated to the service layer.
//
// Every JSON response is an envelope with a "success" flag; failures carry a
// human-readable "message" (see errors_mapper.go).
package http
