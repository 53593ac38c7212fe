package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Get("/verify", h.verify)
			r.Get("/version", h.getServerVersion)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/movies/{category}", h.listMovies)
			r.Get("/movies/id/{movieID}", h.movieDetails)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
