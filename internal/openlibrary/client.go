// Package openlibrary wraps the public Open Library API: book search by
// free-text query or ISBN, work descriptions and cover image URLs, plus the
// age-rating and genre inference applied to search results before they become
// shelf candidates.
package openlibrary

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

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://openlibrary.org"
	defaultCoverURL = "https://covers.openlibrary.org/b"

	// Open Library asks clients to stay well under ~100 req/5min.
	rateLimit = 3
	rateBurst = 5

	// Retry configuration
	maxRetries   = 3
	initialDelay = 1 * time.Second
	maxDelay     = 16 * time.Second

	defaultSearchLimit = 10
)

// Client handles Open Library API requests with rate limiting and retries.
type Client struct {
	baseURL     string
	coverURL    string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

// NewClient creates an Open Library client. baseURL may be empty for the
// public endpoint.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:     baseURL,
		coverURL:    defaultCoverURL,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		logger:      logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Search looks up books by title, author or free text.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Doc, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var resp searchResponse
	if err := c.doRequest(ctx, "/search.json", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return resp.Docs, nil
}

// SearchByISBN looks up books by a specific ISBN.
func (c *Client) SearchByISBN(ctx context.Context, isbn string) ([]Doc, error) {
	params := url.Values{}
	params.Set("isbn", isbn)

	var resp searchResponse
	if err := c.doRequest(ctx, "/search.json", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to search by ISBN: %w", err)
	}
	return resp.Docs, nil
}

// Description fetches the long-form description of a work. workKey is the
// bare work id ("OL45883W") or a full "/works/…" key.
func (c *Client) Description(ctx context.Context, workKey string) (string, error) {
	endpoint := workKey
	if len(endpoint) == 0 {
		return "", fmt.Errorf("empty work key")
	}
	if endpoint[0] != '/' {
		endpoint = "/works/" + endpoint
	}

	var resp workResponse
	if err := c.doRequest(ctx, endpoint+".json", nil, &resp); err != nil {
		return "", fmt.Errorf("failed to get work description: %w", err)
	}
	return resp.description(), nil
}

// CoverURLByID builds a cover image URL from a cover id. Size is S, M or L.
func (c *Client) CoverURLByID(coverID int, size string) string {
	if size == "" {
		size = "M"
	}
	return fmt.Sprintf("%s/id/%d-%s.jpg", c.coverURL, coverID, size)
}

// CoverURLByISBN builds a cover image URL from an ISBN.
func (c *Client) CoverURLByISBN(isbn, size string) string {
	if size == "" {
		size = "M"
	}
	return fmt.Sprintf("%s/isbn/%s-%s.jpg", c.coverURL, isbn, size)
}

// doRequest performs a GET with rate limiting and bounded retries.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	fullURL := c.baseURL + endpoint
	if params != nil {
		fullURL += "?" + params.Encode()
	}

	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", "ReadNest/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt < maxRetries {
				c.logger.Warn("openlibrary request failed, retrying",
					"attempt", attempt+1, "delay", delay, "error", err)
				time.Sleep(delay)
				delay = minDuration(delay*2, maxDelay)
				continue
			}
			return fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
		}

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			resp.Body.Close()

			if shouldRetry(resp.StatusCode) && attempt < maxRetries {
				lastErr = fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
				c.logger.Warn("openlibrary returned retryable status",
					"status", resp.StatusCode, "attempt", attempt+1, "delay", delay)
				time.Sleep(delay)
				delay = minDuration(delay*2, maxDelay)
				continue
			}
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
		}

		err = json.NewDecoder(resp.Body).Decode(result)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
		return nil
	}

	return fmt.Errorf("request failed after %d attempts: %w", maxRetries, lastErr)
}

// shouldRetry determines if an HTTP status code warrants a retry
func shouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || // 429
		statusCode >= 500 // 500-504
}

// minDuration returns the smaller of two durations
func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
