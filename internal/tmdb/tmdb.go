package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// StatusError is returned when TMDB answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx status from %s: %d %s - %s",
		e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchGenres(ctx context.Context, language string) (GenresResponse, error) {
	q := url.Values{}
	q.Set("language", language)

	var genres GenresResponse
	if err := c.getJSON(ctx, "/genre/movie/list", q, &genres); err != nil {
		return GenresResponse{}, err
	}
	return genres, nil
}

func (c *Client) DiscoverMovies(ctx context.Context, params DiscoverParams) (DiscoverResponse, error) {
	q := url.Values{}
	q.Set("language", params.Language)
	q.Set("page", strconv.Itoa(params.Page))
	if params.Year != "" {
		q.Set("primary_release_year", params.Year)
	}
	if params.SortBy != "" {
		q.Set("sort_by", params.SortBy)
	}
	q.Set("include_adult", "false")

	var page DiscoverResponse
	if err := c.getJSON(ctx, "/discover/movie", q, &page); err != nil {
		return DiscoverResponse{}, err
	}
	return page, nil
}

// FetchMovie returns nil without error when TMDB answers 2xx with an empty record.
func (c *Client) FetchMovie(ctx context.Context, movieId, language string) (*Movie, error) {
	q := url.Values{}
	q.Set("language", language)

	var movie *Movie
	if err := c.getJSON(ctx, "/movie/"+url.PathEscape(movieId), q, &movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.fetch(ctx, path, query)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	query.Set("api_key", c.APIKey)
	requestURL := fmt.Sprintf("%s%s?%s", c.BaseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.BaseURL + path
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		// api_key travels in the query string, keep it out of the error
		return nil, &StatusError{URL: c.BaseURL + path, StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}
