// Types for the TMDB v3 responses this service reads
// (https://developer.themoviedb.org/reference). Only the fields used
// downstream are decoded; optional fields are pointers or nil slices so an
// absent value can be told apart from a zero one.
package tmdb

import "encoding/json"

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GenresResponse struct {
	Genres []Genre `json:"genres"`
}

type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
	PosterPath  *string  `json:"poster_path"`
	GenreIDs    GenreIDs `json:"genre_ids"`
	Genres      []Genre  `json:"genres"`
}

type DiscoverResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// GenreIDs decodes to nil when the upstream value is missing, null or not a
// list of integers.
type GenreIDs []int

func (g *GenreIDs) UnmarshalJSON(data []byte) error {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		*g = nil
		return nil
	}
	*g = ids
	return nil
}

type DiscoverParams struct {
	Language string
	Page     int
	Year     string
	SortBy   string
}
