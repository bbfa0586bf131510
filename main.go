package main

import (
	"log"

	"github.com/luchobalot/movies-api/internal/config"
	"github.com/luchobalot/movies-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := server.ListenAndServe(cfg); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
