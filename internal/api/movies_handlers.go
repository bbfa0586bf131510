package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/luchobalot/movies-api/internal/generics"
	"github.com/luchobalot/movies-api/internal/logx"
	"github.com/luchobalot/movies-api/internal/services/movies"
)

const msgUnexpectedError = "unexpected error"

func (api *API) GetMovies(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	query := r.URL.Query()
	params := movies.ListParams{
		Page:     generics.StringToInt(query.Get("page")),
		Language: query.Get("lang"),
		Year:     query.Get("year"),
		OrderBy:  query.Get("order"),
	}

	moviesList, err := api.Movies.GetMovies(r.Context(), params)
	if err != nil {
		if errors.Is(err, movies.ErrNoMoviesFound) {
			logger.Printf("No movies found for page=%d lang=%q year=%q order=%q",
				params.Page, params.Language, params.Year, params.OrderBy)
			respondWithError(w, http.StatusNotFound, movies.ErrNoMoviesFound.Error())
			return
		}
		logx.Errorf(r.Context(), "%v", err)
		respondWithError(w, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	respondWithOk(w, moviesList)
}

func (api *API) GetMovieById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	movieId := r.PathValue("id")

	movie, err := api.Movies.GetMovieById(r.Context(), movieId, r.URL.Query().Get("lang"))
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			logger.Printf("%v", err)
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("no movie found with id %s", movieId))
			return
		}
		logx.Errorf(r.Context(), "%v", err)
		respondWithError(w, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	respondWithOk(w, movie)
}
