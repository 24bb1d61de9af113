package omdb

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
	defaultBaseURL = "https://www.omdbapi.com"
	defaultTimeout = 10 * time.Second
	retryAttempts  = 2
	retryBaseDelay = 250 * time.Millisecond
)

// Client implements domain.RatingsRepository against the OMDb API.
// OMDb answers title lookups; an unknown title is (nil, nil), not an
// error.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new OMDb API client. An empty apiKey yields a
// client whose lookups always return (nil, nil) so the detail view
// degrades to catalog ratings only.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// SetBaseURL overrides the API endpoint (tests).
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// lookupResponse is the OMDb title lookup payload, reduced to the
// fields the detail view consumes.
type lookupResponse struct {
	Response   string      `json:"Response"`
	IMDBRating string      `json:"imdbRating"`
	Metascore  string      `json:"Metascore"`
	Ratings    []sourceDTO `json:"Ratings"`
}

type sourceDTO struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// GetRatings looks up critic scores by title and optional year.
func (c *Client) GetRatings(ctx context.Context, title string, year int) (*domain.Ratings, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	query := url.Values{}
	query.Set("apikey", c.apiKey)
	query.Set("t", title)
	if year > 0 {
		query.Set("y", strconv.Itoa(year))
	}
	reqURL := fmt.Sprintf("%s/?%s", c.baseURL, query.Encode())

	var lookup lookupResponse
	err := retry.Do(
		func() error { return c.doGET(ctx, reqURL, &lookup) },
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.Delay(retryBaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		c.logger.Error("omdb request failed", "title", title, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRatingsUnavailable, err)
	}

	// OMDb signals "no such title" in-band
	if lookup.Response == "False" {
		return nil, nil
	}

	ratings := &domain.Ratings{
		IMDb:           cleanScore(lookup.IMDBRating),
		RottenTomatoes: rottenTomatoesScore(lookup.Ratings),
		Metascore:      cleanScore(lookup.Metascore),
	}
	return ratings, nil
}

func (c *Client) doGET(ctx context.Context, reqURL string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("omdb status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// cleanScore normalizes OMDb's "N/A" placeholder to an empty score.
func cleanScore(s string) string {
	if s == "N/A" {
		return ""
	}
	return s
}

func rottenTomatoesScore(ratings []sourceDTO) string {
	for _, r := range ratings {
		if r.Source == "Rotten Tomatoes" {
			return cleanScore(r.Value)
		}
	}
	return ""
}
