package server

import (
	"log"
	"net/http"
	"os"

	"github.com/luchobalot/movies-api/internal/api"
	"github.com/luchobalot/movies-api/internal/config"
	"github.com/luchobalot/movies-api/internal/services/movies"
	"github.com/luchobalot/movies-api/internal/tmdb"
)

func NewServer(cfg *config.Config) http.Handler {
	client := tmdb.NewClient(cfg.APIKey, cfg.TMDBBaseURL, cfg.UpstreamTimeout)
	handlers := api.NewAPI(movies.NewService(client, cfg))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/movies", handlers.GetMovies)
	mux.HandleFunc("GET /api/v1/movies/{id}", handlers.GetMovieById)

	if info, err := os.Stat(cfg.PublicDir); err == nil && info.IsDir() {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.PublicDir)))
	}

	return RequestIdMiddleware(CorsMiddleware(mux))
}

func ListenAndServe(cfg *config.Config) error {
	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: NewServer(cfg),
	}

	log.Printf("Server is running on http://0.0.0.0%s", cfg.Addr())
	return server.ListenAndServe()
}
