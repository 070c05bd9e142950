package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	userAgent      = "nowplaying-bot/1.0"
	defaultTimeout = 30 * time.Second
	maxAttempts    = 2
	retryBackoff   = 2 * time.Second
)

// Config holds configuration for the scraper client
type Config struct {
	// BaseURL is the scraping sidecar, e.g. http://localhost:9000
	BaseURL string

	// Timeout bounds each request, defaults to 30s
	Timeout time.Duration

	// HTTPClient overrides the default client (tests)
	HTTPClient *http.Client
}

// Client talks to a scraping sidecar that renders the arcade site and
// returns JSON. It implements Provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
	backoff    time.Duration
}

// NewClient creates a new scraper client from the provided configuration.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		backoff:    retryBackoff,
	}, nil
}

// FetchLeaderboard fetches the arcade leaderboard.
func (c *Client) FetchLeaderboard(ctx context.Context) (*FetchLeaderboardOutput, error) {
	body, err := c.doRequest(ctx, "/leaderboard")
	if err != nil {
		return nil, fmt.Errorf("fetching leaderboard: %w", err)
	}

	var out FetchLeaderboardOutput
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("parsing leaderboard response: %w", err)
	}

	rows := make([]*LeaderboardRow, 0, len(out.Rows))
	for _, row := range out.Rows {
		if row == nil || row.ExternalID == "" {
			continue
		}
		row.ExternalID = strings.ReplaceAll(row.ExternalID, "-", "")
		rows = append(rows, row)
	}
	out.Rows = rows

	return &out, nil
}

// FetchProfile fetches one player's profile.
func (c *Client) FetchProfile(ctx context.Context, input *FetchProfileInput) (*FetchProfileOutput, error) {
	if input == nil || input.ExternalID == "" {
		return nil, errors.New("input and external ID cannot be empty")
	}

	body, err := c.doRequest(ctx, "/profiles/"+url.PathEscape(input.ExternalID))
	if err != nil {
		return nil, fmt.Errorf("fetching profile %s: %w", input.ExternalID, err)
	}

	var out FetchProfileOutput
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("parsing profile response: %w", err)
	}

	return &out, nil
}

// doRequest performs a GET, retrying once on a server error.
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing request: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusNotFound:
			return nil, ErrNotFound
		case resp.StatusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
			continue
		default:
			return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
	}

	return nil, lastErr
}
