// Package upcdb provides a client for the UPCitemdb barcode directory.
package upcdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.upcitemdb.com/prod/trial"

// Sentinel errors for directory responses. All lookup failures fold into one
// of these so callers can log the reason without branching on it.
var (
	ErrNotFound    = errors.New("barcode not found in directory")
	ErrRateLimited = errors.New("rate limited: too many requests")
	ErrTransport   = errors.New("transport failure")
)

// RetryPolicy controls lookup retries. Rate-limit responses wait a linear
// multiple of RateLimitDelay; transport failures back off exponentially from
// TransportDelay. A structurally valid "no items" response never retries.
type RetryPolicy struct {
	MaxAttempts    int
	RateLimitDelay time.Duration
	TransportDelay time.Duration

	// Sleep is substitutable so tests don't wait out real backoff.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy returns the production retry policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		RateLimitDelay: 5 * time.Second,
		TransportDelay: time.Second,
		Sleep:          sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Client is a UPCitemdb API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	policy     RetryPolicy
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetryPolicy overrides the retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) {
		if p.Sleep == nil {
			p.Sleep = sleepContext
		}
		c.policy = p
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "upcdb")
	}
}

// NewClient creates a new UPCitemdb client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		policy: DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// lookupResponse is the UPCitemdb lookup API response.
type lookupResponse struct {
	Code  string `json:"code"`
	Items []struct {
		Title string `json:"title"`
		Brand string `json:"brand"`
	} `json:"items"`
}

// Lookup resolves a barcode to its raw commercial title. It retries on
// rate-limit and transport failures up to the policy's attempt limit, then returns
// the last failure as an ErrRateLimited or ErrTransport wrapped error.
// An empty item list is authoritative and returns ErrNotFound immediately.
func (c *Client) Lookup(ctx context.Context, barcode string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		title, err := c.lookupOnce(ctx, barcode)
		switch {
		case err == nil:
			return title, nil
		case errors.Is(err, ErrNotFound):
			return "", err
		case errors.Is(err, ErrRateLimited):
			lastErr = err
			if attempt < c.policy.MaxAttempts {
				// Linear backoff: the directory's trial tier meters by the minute.
				wait := c.policy.RateLimitDelay * time.Duration(attempt)
				c.debug("rate limited, backing off", "barcode", barcode, "attempt", attempt, "wait", wait)
				if err := c.policy.Sleep(ctx, wait); err != nil {
					return "", fmt.Errorf("lookup %s: %w", barcode, err)
				}
			}
		default:
			lastErr = err
			if attempt < c.policy.MaxAttempts {
				wait := c.policy.TransportDelay * time.Duration(1<<uint(attempt-1))
				c.debug("transport failure, backing off", "barcode", barcode, "attempt", attempt, "wait", wait, "error", err)
				if err := c.policy.Sleep(ctx, wait); err != nil {
					return "", fmt.Errorf("lookup %s: %w", barcode, err)
				}
			}
		}
	}
	return "", fmt.Errorf("lookup %s: %d attempts exhausted: %w", barcode, c.policy.MaxAttempts, lastErr)
}

func (c *Client) lookupOnce(ctx context.Context, barcode string) (string, error) {
	u := fmt.Sprintf("%s/lookup?upc=%s", c.baseURL, url.QueryEscape(barcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: directory returned %s", ErrTransport, resp.Status)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrTransport, err)
	}

	if body.Code != "OK" || len(body.Items) == 0 {
		return "", ErrNotFound
	}
	return body.Items[0].Title, nil
}

func (c *Client) debug(msg string, args ...any) {
	if c.log != nil {
		c.log.Debug(msg, args...)
	}
}
