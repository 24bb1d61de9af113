package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cinemate/cinemate/internal/domain"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p"
	defaultTimeout = 15 * time.Second
	defaultSortBy  = "popularity.desc"
	retryAttempts  = 3
	retryBaseDelay = 300 * time.Millisecond
)

// ImageSize selects a rendition of a catalog image.
type ImageSize string

const (
	ImagePoster   ImageSize = "w500"
	ImageBackdrop ImageSize = "w1280"
	ImageProfile  ImageSize = "w185"
)

// retryableError marks transient failures (429 / 5xx / transport) so
// the retry policy can distinguish them from hard API errors.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// Client implements domain.CatalogRepository against the TMDB v3 API.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey, language string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if language == "" {
		language = "en-US"
	}
	return &Client{
		baseURL:  defaultBaseURL,
		apiKey:   apiKey,
		language: language,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// SetBaseURL overrides the API endpoint (tests).
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// GetPopular returns one page of the popular movies chart.
func (c *Client) GetPopular(ctx context.Context, page int) (*domain.MoviePage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var resp movieListResponse
	if err := c.get(ctx, "/movie/popular", query, &resp); err != nil {
		return nil, err
	}
	return mapPage(resp), nil
}

// Search returns one page of title search results.
func (c *Client) Search(ctx context.Context, searchQuery string, page int) (*domain.MoviePage, error) {
	query := url.Values{}
	query.Set("query", searchQuery)
	query.Set("page", strconv.Itoa(page))

	var resp movieListResponse
	if err := c.get(ctx, "/search/movie", query, &resp); err != nil {
		return nil, err
	}
	return mapPage(resp), nil
}

// Discover returns one page of movies matching the filters.
func (c *Client) Discover(ctx context.Context, filters domain.DiscoverFilters, page int) (*domain.MoviePage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	query.Set("sort_by", sortBy)

	if filters.Genre > 0 {
		query.Set("with_genres", strconv.FormatInt(filters.Genre, 10))
	}
	if filters.Year > 0 {
		query.Set("year", strconv.Itoa(filters.Year))
	}
	if filters.MinRating > 0 {
		query.Set("vote_average.gte", strconv.FormatFloat(filters.MinRating, 'f', 1, 64))
	}

	var resp movieListResponse
	if err := c.get(ctx, "/discover/movie", query, &resp); err != nil {
		return nil, err
	}
	return mapPage(resp), nil
}

// GetMovieDetails returns the full record for a single movie with
// credits and videos appended in one request.
func (c *Client) GetMovieDetails(ctx context.Context, id int64) (*domain.MovieDetail, error) {
	query := url.Values{}
	query.Set("append_to_response", "credits,videos")

	var resp movieDetailDTO
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), query, &resp); err != nil {
		return nil, err
	}
	return mapDetail(resp), nil
}

// GetGenres returns the catalog's genre list.
func (c *Client) GetGenres(ctx context.Context) ([]domain.Genre, error) {
	var resp genreListResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, err
	}
	return mapGenres(resp), nil
}

// ImageURL resolves a poster/backdrop path fragment to a full URL.
// Empty path fragments resolve to "".
func ImageURL(path string, size ImageSize) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", imageBaseURL, size, path)
}

// get performs an authenticated GET with retry on transient failures
// (429 and 5xx responses, transport errors) using exponential backoff.
func (c *Client) get(ctx context.Context, path string, query url.Values, v interface{}) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	err := retry.Do(
		func() error { return c.doGET(ctx, reqURL, v) },
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.Delay(retryBaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			_, transient := err.(*retryableError)
			return transient
		}),
	)
	if err != nil {
		if transient, ok := err.(*retryableError); ok {
			c.logger.Error("tmdb request failed after retries", "path", path, "error", err)
			return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, transient.err)
		}
		return err
	}
	return nil
}

func (c *Client) doGET(ctx context.Context, reqURL string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &retryableError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		io.Copy(io.Discard, resp.Body)
		return &retryableError{err: fmt.Errorf("tmdb status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &retryableError{err: fmt.Errorf("failed to read response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrNotConfigured
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrMovieNotFound
	case resp.StatusCode != http.StatusOK:
		var status statusResponse
		if json.Unmarshal(body, &status) == nil && status.StatusMessage != "" {
			return fmt.Errorf("tmdb error %d: %s", resp.StatusCode, status.StatusMessage)
		}
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, v); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
