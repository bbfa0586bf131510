package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{"TMDB_API_KEY": "abc"}))
	require.NoError(t, err)
	require.Equal(t, &Config{
		APIKey:          "abc",
		Port:            DefaultPort,
		TMDBBaseURL:     DefaultTMDBBaseURL,
		ImageBaseURL:    DefaultImageBaseURL,
		DefaultLanguage: DefaultLanguage,
		UpstreamTimeout: DefaultUpstreamTimeout,
		PublicDir:       DefaultPublicDir,
	}, cfg)
	require.Equal(t, ":3000", cfg.Addr())
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"API_key":             "legacy",
		"PORT":                "8080",
		"TMDB_BASE_URL":       "http://localhost:9999/3/",
		"TMDB_IMAGE_BASE_URL": "https://img.example.com/w342",
		"DEFAULT_LANGUAGE":    "en-US",
		"UPSTREAM_TIMEOUT":    "2s",
		"PUBLIC_DIR":          "static",
	}))
	require.NoError(t, err)
	require.Equal(t, "legacy", cfg.APIKey)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "http://localhost:9999/3", cfg.TMDBBaseURL)
	require.Equal(t, "https://img.example.com/w342", cfg.ImageBaseURL)
	require.Equal(t, "en-US", cfg.DefaultLanguage)
	require.Equal(t, 2*time.Second, cfg.UpstreamTimeout)
	require.Equal(t, "static", cfg.PublicDir)

	cfg, err = FromEnv(envFrom(map[string]string{"TMDB_API_KEY": "new", "API_key": "legacy"}))
	require.NoError(t, err)
	require.Equal(t, "new", cfg.APIKey)
}

func TestFromEnvErrors(t *testing.T) {
	_, err := FromEnv(envFrom(map[string]string{}))
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = FromEnv(envFrom(map[string]string{"TMDB_API_KEY": "   "}))
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = FromEnv(envFrom(map[string]string{"TMDB_API_KEY": "abc", "UPSTREAM_TIMEOUT": "soon"}))
	require.Error(t, err)

	_, err = FromEnv(envFrom(map[string]string{"TMDB_API_KEY": "abc", "UPSTREAM_TIMEOUT": "-1s"}))
	require.Error(t, err)
}
