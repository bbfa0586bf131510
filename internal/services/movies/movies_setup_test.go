package movies

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/luchobalot/movies-api/internal/config"
	"github.com/luchobalot/movies-api/internal/tmdb"
)

const testAPIKey = "test-key"

var testGenres = []tmdb.Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 18, Name: "Drama"},
}

// fakeTMDB serves the three upstream endpoints from in-memory data and
// records what it was asked for.
type fakeTMDB struct {
	mu sync.Mutex

	genresStatus   int
	genresBody     string
	discoverStatus int
	failOnPage     int
	pages          map[int][]map[string]any
	movies         map[string]string

	discoverCalls []int
	queries       map[string]url.Values
}

func newFakeTMDB() *fakeTMDB {
	genresBody, _ := json.Marshal(tmdb.GenresResponse{Genres: testGenres})
	return &fakeTMDB{
		genresBody: string(genresBody),
		pages:      map[int][]map[string]any{},
		movies:     map[string]string{},
		queries:    map[string]url.Values{},
	}
}

func (f *fakeTMDB) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries[r.URL.Path] = r.URL.Query()
	if r.URL.Query().Get("api_key") != testAPIKey {
		http.Error(w, `{"status_code":7,"status_message":"Invalid API key"}`, http.StatusUnauthorized)
		return
	}

	switch {
	case r.URL.Path == "/genre/movie/list":
		if f.genresStatus != 0 {
			http.Error(w, `{"status_message":"genres down"}`, f.genresStatus)
			return
		}
		w.Write([]byte(f.genresBody))

	case r.URL.Path == "/discover/movie":
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		f.discoverCalls = append(f.discoverCalls, page)
		if f.discoverStatus != 0 && (f.failOnPage == 0 || f.failOnPage == page) {
			http.Error(w, `{"status_message":"discover down"}`, f.discoverStatus)
			return
		}
		results, ok := f.pages[page]
		if !ok {
			results = []map[string]any{}
		}
		body, _ := json.Marshal(map[string]any{"page": page, "results": results})
		w.Write(body)

	case strings.HasPrefix(r.URL.Path, "/movie/"):
		id := strings.TrimPrefix(r.URL.Path, "/movie/")
		body, ok := f.movies[id]
		if !ok {
			http.Error(w, `{"status_code":34,"status_message":"The resource you requested could not be found."}`, http.StatusNotFound)
			return
		}
		w.Write([]byte(body))

	default:
		http.NotFound(w, r)
	}
}

func (f *fakeTMDB) update(change func(f *fakeTMDB)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	change(f)
}

func (f *fakeTMDB) calls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.discoverCalls...)
}

func (f *fakeTMDB) query(path string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[path]
}

// addPages adds count pages of size movies each, starting at page 1.
// Movies are numbered from 1 across pages.
func (f *fakeTMDB) addPages(count, size int) {
	id := 1
	for page := 1; page <= count; page++ {
		results := make([]map[string]any, size)
		for i := range results {
			results[i] = rawMovie(id)
			id++
		}
		f.pages[page] = results
	}
}

func rawMovie(id int) map[string]any {
	return map[string]any{
		"id":           id,
		"title":        fmt.Sprintf("Movie %d", id),
		"overview":     fmt.Sprintf("Overview %d", id),
		"release_date": "2024-01-01",
		"vote_average": 7.666,
		"poster_path":  fmt.Sprintf("/poster-%d.jpg", id),
		"genre_ids":    []int{28, 99, 18},
	}
}

func newTestService(t *testing.T, fake *fakeTMDB) *Service {
	t.Helper()

	upstream := httptest.NewServer(fake)
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		APIKey:          testAPIKey,
		TMDBBaseURL:     upstream.URL,
		ImageBaseURL:    config.DefaultImageBaseURL,
		DefaultLanguage: config.DefaultLanguage,
		UpstreamTimeout: 5 * time.Second,
	}
	client := tmdb.NewClient(cfg.APIKey, cfg.TMDBBaseURL, cfg.UpstreamTimeout)
	return NewService(client, cfg)
}
