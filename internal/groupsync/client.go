// Package groupsync is a standalone maintenance tool (cmd/mediatag-groups)
// that grows the ReleaseGroup half of the keyword catalog: it scrapes a
// configured listing page for known fansub/scene group names and persists
// newly-seen ones to the catalog store as overlay keywords. It is never
// invoked at parse time.
package groupsync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client fetches the configured listing page, throttled to one request per
// configured interval, mirroring the teacher's douban.Client rate-limiting
// pattern.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger

	username string
	password string
}

// NewClient builds a Client that waits interval between requests. username
// and password, if non-empty, are sent as HTTP basic auth on every request.
func NewClient(interval time.Duration, username, password string) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		rateLimiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:      slog.Default(),
		username:    username,
		password:    password,
	}
}

// FetchListing fetches url's body, waiting on the rate limiter first.
func (c *Client) FetchListing(ctx context.Context, url string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	c.logger.Info("fetching release-group listing", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("listing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("listing request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read listing response: %w", err)
	}
	return string(body), nil
}
