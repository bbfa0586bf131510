package movies

import (
	"strconv"

	"github.com/luchobalot/movies-api/internal/generics"
	"github.com/luchobalot/movies-api/internal/tmdb"
)

/*
MapGenreIdsToNames translates genre ids into names using the genre table.

- Ids with no match in the table are dropped, so the result can be shorter than ids.
- A nil ids or a nil table gives the single GenresUnavailable entry.
- An empty ids gives an empty, non-nil slice.
*/
func MapGenreIdsToNames(ids []int, table []tmdb.Genre) []string {
	if ids == nil || table == nil {
		return []string{GenresUnavailable}
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name := unknownGenre
		for _, genre := range table {
			if genre.ID == id {
				name = genre.Name
				break
			}
		}
		if name != unknownGenre {
			names = append(names, name)
		}
	}

	return names
}

func MapGenresToNames(genres []tmdb.Genre) []string {
	names := make([]string, len(genres))
	for i, genre := range genres {
		names[i] = genre.Name
	}
	return names
}

// Normalize reduces an upstream movie to the public shape. Every missing
// field gets its fallback, so the result is always fully populated.
func Normalize(movie EnrichedMovie, imageBaseURL string) Movie {
	genres := movie.GenreNames
	if genres == nil {
		genres = []string{GenresUnavailable}
	}

	score := Score{}
	if movie.VoteAverage != nil {
		score = Score{Value: roundToOneDecimal(*movie.VoteAverage), Available: true}
	}

	posterURL := PlaceholderPosterURL
	if movie.PosterPath != nil && *movie.PosterPath != "" {
		posterURL = imageBaseURL + *movie.PosterPath
	}

	return Movie{
		Title:       generics.OrDefault(movie.Title, TitleUnavailable),
		Description: generics.OrDefault(movie.Overview, DescriptionUnavailable),
		ReleaseDate: generics.OrDefault(movie.ReleaseDate, DateUnavailable),
		Genres:      genres,
		VoteAverage: score,
		PosterPath:  posterURL,
	}
}

// roundToOneDecimal rounds the exact binary value, so 6.85 (stored as
// 6.8499...) gives 6.8.
func roundToOneDecimal(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return rounded
}
