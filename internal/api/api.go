package api

import (
	"github.com/luchobalot/movies-api/internal/services/movies"
)

type API struct {
	Movies *movies.Service
}

func NewAPI(moviesService *movies.Service) *API {
	return &API{Movies: moviesService}
}
