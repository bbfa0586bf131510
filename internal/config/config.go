package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/luchobalot/movies-api/internal/generics"
)

const (
	DefaultPort            = "3000"
	DefaultTMDBBaseURL     = "https://api.themoviedb.org/3"
	DefaultImageBaseURL    = "https://image.tmdb.org/t/p/w500"
	DefaultLanguage        = "es-ES"
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultPublicDir       = "public"
)

var ErrMissingAPIKey = errors.New("TMDB_API_KEY is required")

/*
Config holds everything the server needs at startup. It is built once in
main and handed by reference to the components that need it.

Environment variables:
  - TMDB_API_KEY (or the legacy API_key): upstream credential, required
  - PORT: listen port
  - TMDB_BASE_URL: upstream API root
  - TMDB_IMAGE_BASE_URL: prefix for poster paths
  - DEFAULT_LANGUAGE: language used when a request has no lang
  - UPSTREAM_TIMEOUT: per-call timeout, Go duration syntax (e.g. 5s)
  - PUBLIC_DIR: directory served as static files
*/
type Config struct {
	APIKey          string
	Port            string
	TMDBBaseURL     string
	ImageBaseURL    string
	DefaultLanguage string
	UpstreamTimeout time.Duration
	PublicDir       string
}

// Load reads a .env file if there is one and builds the Config from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the Config from a lookup function, so tests don't need to touch the process environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}

	cfg := &Config{
		APIKey:          generics.OrDefault(get("TMDB_API_KEY"), get("API_key")),
		Port:            generics.OrDefault(get("PORT"), DefaultPort),
		TMDBBaseURL:     strings.TrimRight(generics.OrDefault(get("TMDB_BASE_URL"), DefaultTMDBBaseURL), "/"),
		ImageBaseURL:    generics.OrDefault(get("TMDB_IMAGE_BASE_URL"), DefaultImageBaseURL),
		DefaultLanguage: generics.OrDefault(get("DEFAULT_LANGUAGE"), DefaultLanguage),
		UpstreamTimeout: DefaultUpstreamTimeout,
		PublicDir:       generics.OrDefault(get("PUBLIC_DIR"), DefaultPublicDir),
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if raw := get("UPSTREAM_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", raw, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: must be positive", raw)
		}
		cfg.UpstreamTimeout = timeout
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
