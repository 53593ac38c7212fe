// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strconv"
	"strings"
)

// MovieCategory names one of the catalog lists shown on the home page.
type MovieCategory string

const (
	Trending MovieCategory = "trending"
	Popular  MovieCategory = "popular"
	TopRated MovieCategory = "top_rated"
	Upcoming MovieCategory = "upcoming"
)

// MovieCategories lists the home page rows in display order.
var MovieCategories = []MovieCategory{Trending, Popular, TopRated, Upcoming}

// Valid reports whether c is a known catalog list.
func (c MovieCategory) Valid() bool {
	switch c {
	case Trending, Popular, TopRated, Upcoming:
		return true
	}
	return false
}

// Title is the row heading shown in the UI.
func (c MovieCategory) Title() string {
	switch c {
	case Trending:
		return "Trending Now"
	case Popular:
		return "Popular on Netflix"
	case TopRated:
		return "Top Rated"
	case Upcoming:
		return "Upcoming"
	}
	return string(c)
}

// Movie is a movie summary as returned by the catalog list endpoints.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	BackdropPath string  `json:"backdrop_path"`
	PosterPath   string  `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	Adult        bool    `json:"adult"`
}

// MatchPercent converts the 0..10 vote average into the "NN% Match" figure.
func (m Movie) MatchPercent() int {
	return int(math.Round(m.VoteAverage * 10))
}

// ReleaseYear returns the year part of ReleaseDate, or 0 when unknown.
func (m Movie) ReleaseYear() int {
	year, _, _ := strings.Cut(m.ReleaseDate, "-")
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return y
}

// MoviePage is one page of a catalog list.
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a catalog genre reference.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the full record returned by the single-movie endpoint.
type MovieDetails struct {
	Movie

	Runtime int     `json:"runtime"`
	Tagline string  `json:"tagline"`
	Status  string  `json:"status"`
	Genres  []Genre `json:"genres"`
}

// HomePage is everything the client home screen renders.
type HomePage struct {
	Hero []Movie
	Rows map[MovieCategory][]Movie
}
