package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/internal/utils"
	"github.com/MKhiriev/go-flix/models"
)

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	category := models.MovieCategory(chi.URLParam(r, "category"))

	movies, err := h.services.CatalogService.List(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.MoviesResponse{Success: true, Movies: movies}, http.StatusOK)
}

func (h *Handler) movieDetails(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "movieID")
	movieID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %q", service.ErrInvalidMovieID, rawID))
		return
	}

	details, err := h.services.CatalogService.Details(r.Context(), movieID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.MovieResponse{Success: true, Movie: details}, http.StatusOK)
}
