// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-flix/internal/app"
	"github.com/MKhiriev/go-flix/internal/utils"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers with 405 and the JSON error envelope instead of chi's plain-text
// body, and lists the methods the matched path does accept in the "Allow"
// header. Parameterised routes such as /api/movies/{category} are resolved
// with [chi.Mux.Match], so the header is correct for them too.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range knownMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
