package radarr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sentinel errors for Radarr API responses.
var (
	ErrUnauthorized  = errors.New("unauthorized: invalid radarr api key")
	ErrAlreadyExists = errors.New("movie already registered with radarr")
)

// Client is a Radarr v3 API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "radarr")
	}
}

// NewClient creates a new Radarr client.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search looks up movie candidates for a free-text term. Radarr proxies the
// query to TMDB and returns ranked results.
func (c *Client) Search(ctx context.Context, term string) ([]MovieCandidate, error) {
	u := fmt.Sprintf("%s/api/v3/movie/lookup?term=%s", c.baseURL, url.QueryEscape(term))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("radarr lookup: %s", resp.Status)
	}

	var results []MovieCandidate
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}

	if c.log != nil {
		c.log.Debug("movie lookup", "term", term, "results", len(results))
	}
	return results, nil
}

// Register adds the movie to Radarr for library management. Returns
// ErrAlreadyExists when Radarr already tracks the movie; callers treat that
// as success and proceed with their own bookkeeping.
func (c *Client) Register(ctx context.Context, candidate MovieCandidate, rootPath string, qualityProfileID int) error {
	payload := addRequest{
		TMDBID:           candidate.TMDBID,
		Title:            candidate.Title,
		Year:             candidate.Year,
		QualityProfileID: qualityProfileID,
		RootFolderPath:   rootPath,
		Monitored:        true,
		AddOptions:       addOptions{SearchForMovie: false},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal add request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v3/movie", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		if c.log != nil {
			c.log.Info("movie registered", "tmdb_id", candidate.TMDBID, "title", candidate.Title)
		}
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest:
		// Radarr reports duplicates as a validation failure.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if strings.Contains(strings.ToLower(string(msg)), "already") {
			return ErrAlreadyExists
		}
		return fmt.Errorf("radarr add rejected: %s", strings.TrimSpace(string(msg)))
	default:
		return fmt.Errorf("radarr add: %s", resp.Status)
	}
}
