package sonarr

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

// Sentinel errors for Sonarr API responses.
var (
	ErrUnauthorized  = errors.New("unauthorized: invalid sonarr api key")
	ErrAlreadyExists = errors.New("series already registered with sonarr")
)

// Client is a Sonarr v3 API client.
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
		c.log = log.With("component", "sonarr")
	}
}

// NewClient creates a new Sonarr client.
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

// Search looks up series candidates for a free-text term. Sonarr proxies the
// query to TVDB and returns ranked results.
func (c *Client) Search(ctx context.Context, term string) ([]SeriesCandidate, error) {
	u := fmt.Sprintf("%s/api/v3/series/lookup?term=%s", c.baseURL, url.QueryEscape(term))
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
		return nil, fmt.Errorf("sonarr lookup: %s", resp.Status)
	}

	var results []SeriesCandidate
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}

	if c.log != nil {
		c.log.Debug("series lookup", "term", term, "results", len(results))
	}
	return results, nil
}

// Register adds the series to Sonarr for library management. Returns
// ErrAlreadyExists when Sonarr already tracks the series; callers treat that
// as success and proceed with their own bookkeeping.
func (c *Client) Register(ctx context.Context, candidate SeriesCandidate, rootPath string, qualityProfileID int) error {
	payload := addRequest{
		TVDBID:           candidate.TVDBID,
		Title:            candidate.Title,
		Year:             candidate.Year,
		QualityProfileID: qualityProfileID,
		RootFolderPath:   rootPath,
		Monitored:        true,
		AddOptions:       addOptions{SearchForMissingEpisodes: false},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal add request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v3/series", bytes.NewReader(body))
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
			c.log.Info("series registered", "tvdb_id", candidate.TVDBID, "title", candidate.Title)
		}
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest:
		// Sonarr reports duplicates as a validation failure.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if strings.Contains(strings.ToLower(string(msg)), "already") {
			return ErrAlreadyExists
		}
		return fmt.Errorf("sonarr add rejected: %s", strings.TrimSpace(string(msg)))
	default:
		return fmt.Errorf("sonarr add: %s", resp.Status)
	}
}
