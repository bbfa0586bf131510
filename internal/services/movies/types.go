// The structs defined here are the public shape of a movie, reduced from the types in the tmdb package
package movies

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/luchobalot/movies-api/internal/tmdb"
)

const (
	TitleUnavailable       = "title unavailable"
	DescriptionUnavailable = "description unavailable"
	DateUnavailable        = "date unavailable"
	GenresUnavailable      = "genres unavailable"
	ScoreUnavailable       = "score unavailable"
	PlaceholderPosterURL   = "https://via.placeholder.com/500x750?text=No+Image"

	unknownGenre = "unknown genre"
)

const (
	MaxMovies      = 50
	DefaultOrderBy = "popularity.desc"
)

var (
	ErrNoMoviesFound = errors.New("no movies found for the selected filters")
	ErrMovieNotFound = errors.New("movie not found")
)

type Movie struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ReleaseDate string   `json:"release_date"`
	Genres      []string `json:"genres"`
	VoteAverage Score    `json:"vote_average"`
	PosterPath  string   `json:"poster_path"`
}

// Score is a rating rounded to one decimal. When it is not available it
// encodes as the ScoreUnavailable string instead of a number.
type Score struct {
	Value     float64
	Available bool
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Available {
		return json.Marshal(ScoreUnavailable)
	}
	return json.Marshal(s.Value)
}

func (s *Score) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		*s = Score{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Score{Value: v, Available: true}
	return nil
}

// EnrichedMovie is an upstream movie with its genre names already resolved.
// A nil GenreNames means the names could not be resolved at all.
type EnrichedMovie struct {
	tmdb.Movie
	GenreNames []string
}

// GenreTable is the result of a genre lookup. Err is set when the lookup
// failed, in which case Genres is empty.
type GenreTable struct {
	Genres []tmdb.Genre
	Err    error
}

func (t GenreTable) Failed() bool {
	return t.Err != nil
}

type ListParams struct {
	Page     int
	Language string
	Year     string
	OrderBy  string
}

type MoviesResponse struct {
	Status string  `json:"status"`
	Data   []Movie `json:"data"`
}

type MovieResponse struct {
	Status string `json:"status"`
	Data   Movie  `json:"data"`
}
