package movies

import (
	"context"
	"fmt"

	"github.com/luchobalot/movies-api/internal/config"
	"github.com/luchobalot/movies-api/internal/generics"
	"github.com/luchobalot/movies-api/internal/logx"
	"github.com/luchobalot/movies-api/internal/tmdb"
)

type Service struct {
	client          *tmdb.Client
	imageBaseURL    string
	defaultLanguage string
}

func NewService(client *tmdb.Client, cfg *config.Config) *Service {
	return &Service{
		client:          client,
		imageBaseURL:    cfg.ImageBaseURL,
		defaultLanguage: cfg.DefaultLanguage,
	}
}

// FetchGenres never fails. When the upstream call does, the error is logged
// and the returned table is empty, so every id maps to nothing.
func (s *Service) FetchGenres(ctx context.Context, language string) GenreTable {
	resp, err := s.client.FetchGenres(ctx, s.language(language))
	if err != nil {
		logx.Errorf(ctx, "fetching genres: %v", err)
		return GenreTable{Genres: []tmdb.Genre{}, Err: err}
	}

	return GenreTable{Genres: resp.Genres}
}

/*
GetMovies collects up to MaxMovies movies from the discover endpoint.

Pages are requested one after the other starting at params.Page until at
least MaxMovies movies are collected or a page comes back empty. The last
page can overshoot, the surplus is cut after the loop. Any upstream error
aborts the whole listing.
*/
func (s *Service) GetMovies(ctx context.Context, params ListParams) ([]Movie, error) {
	params = s.withDefaults(params)

	table := s.FetchGenres(ctx, params.Language)

	var collected []EnrichedMovie
	currentPage := params.Page
	for len(collected) < MaxMovies {
		page, err := s.client.DiscoverMovies(ctx, tmdb.DiscoverParams{
			Language: params.Language,
			Page:     currentPage,
			Year:     params.Year,
			SortBy:   params.OrderBy,
		})
		if err != nil {
			return nil, fmt.Errorf("discover movies page %d: %w", currentPage, err)
		}

		if len(page.Results) == 0 {
			break
		}

		for _, movie := range page.Results {
			collected = append(collected, EnrichedMovie{
				Movie:      movie,
				GenreNames: MapGenreIdsToNames(movie.GenreIDs, table.Genres),
			})
		}
		currentPage++
	}

	if len(collected) == 0 {
		return nil, ErrNoMoviesFound
	}

	collected = generics.Take(collected, MaxMovies)
	movies := make([]Movie, len(collected))
	for i, movie := range collected {
		movies[i] = Normalize(movie, s.imageBaseURL)
	}

	return movies, nil
}

// GetMovieById prefers the genre objects sent with the record and only
// falls back to the genre table when they are missing.
func (s *Service) GetMovieById(ctx context.Context, movieId, language string) (Movie, error) {
	language = s.language(language)

	table := s.FetchGenres(ctx, language)

	movie, err := s.client.FetchMovie(ctx, movieId, language)
	if err != nil {
		if tmdb.IsNotFound(err) {
			return Movie{}, fmt.Errorf("%w: %s", ErrMovieNotFound, movieId)
		}
		return Movie{}, fmt.Errorf("fetch movie %s: %w", movieId, err)
	}
	if movie == nil {
		return Movie{}, fmt.Errorf("%w: %s", ErrMovieNotFound, movieId)
	}

	enriched := EnrichedMovie{Movie: *movie}
	if movie.Genres != nil {
		enriched.GenreNames = MapGenresToNames(movie.Genres)
	} else {
		enriched.GenreNames = MapGenreIdsToNames(movie.GenreIDs, table.Genres)
	}

	return Normalize(enriched, s.imageBaseURL), nil
}
