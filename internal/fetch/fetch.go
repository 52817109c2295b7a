package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bakkerme/internwatch/internal/retry"
)

// Client retrieves raw listing pages. Responses are size-capped and transient
// failures (transport errors, 429, 5xx) are retried with backoff.
type Client struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; internwatch/0.1)"
	}
	return &Client{
		client:      &http.Client{Timeout: timeout},
		userAgent:   userAgent,
		maxBodySize: 10 << 20, // 10 MiB
	}
}

// Get fetches url and returns the response body as text.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", fmt.Errorf("fetch: url is required")
	}

	var (
		lastStatus int
		respBody   []byte
	)
	err := retry.Do(ctx, retry.Config{Attempts: 3, BaseDelay: 200 * time.Millisecond}, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		limited := io.LimitReader(resp.Body, c.maxBodySize+1)
		body, err := io.ReadAll(limited)
		if err != nil {
			return err
		}
		if int64(len(body)) > c.maxBodySize {
			return fmt.Errorf("fetch: response too large")
		}

		lastStatus = resp.StatusCode
		respBody = body

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("fetch transient error: %s", resp.Status)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("fetch request failed: %s", resp.Status)
		}
		return nil
	})
	if err != nil {
		if lastStatus != 0 {
			return "", fmt.Errorf("fetch %s: status %d: %w", url, lastStatus, err)
		}
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}

	return string(respBody), nil
}
