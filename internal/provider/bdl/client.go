// Package bdl provides the HTTP client for the BallDontLie NBA API.
//
// BDL uses page-number pagination: every response carries meta.next_page,
// which is null on the last page. Requests are paced with a token bucket
// limiter and issued strictly one after another.
package bdl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://www.balldontlie.io/api/v1"
	defaultPerPage = 100
	defaultTimeout = 30 * time.Second
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL           string
	APIKey            string
	RequestsPerMinute int
	Timeout           time.Duration
	HTTPClient        *http.Client
}

// Client is the shared HTTP client for all BDL endpoints.
type Client struct {
	httpClient httpDoer
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient creates a BDL HTTP client with rate limiting. A non-positive
// RequestsPerMinute disables pacing.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)
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
		httpClient: httpClient,
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// TransportError reports a failed call to the upstream API: a network error,
// a non-200 status, or a body that is not the expected JSON envelope.
type TransportError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("BDL %s returned %d: %v", e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("BDL %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// pageMeta is the pagination block of every BDL collection response.
type pageMeta struct {
	NextPage   *int `json:"next_page"`
	TotalPages int  `json:"total_pages"`
	TotalCount int  `json:"total_count"`
}

// paginatedResponse is the common BDL response wrapper.
type paginatedResponse struct {
	Data []json.RawMessage `json:"data"`
	Meta pageMeta          `json:"meta"`
}

// FetchAll requests path page by page, following meta.next_page until it is
// absent or the collection has a single page, and returns every record in
// request order. Any failed page aborts the whole fetch.
func (c *Client) FetchAll(ctx context.Context, path string, params url.Values) ([]json.RawMessage, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", "1")

	var all []json.RawMessage
	page := 1
	for {
		resp, err := c.get(ctx, path, q)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Data...)

		if page == 1 {
			c.logger.Info("Gathering records", "path", path, "total_count", resp.Meta.TotalCount, "total_pages", resp.Meta.TotalPages)
		}

		next := resp.Meta.NextPage
		if next == nil || resp.Meta.TotalPages == 1 {
			break
		}
		if *next <= page {
			c.logger.Warn("BDL next_page did not advance, stopping", "path", path, "page", page, "next_page", *next)
			break
		}
		page = *next
		q.Set("page", strconv.Itoa(page))
	}

	c.logger.Info("Gathering records complete", "path", path, "records", len(all))
	return all, nil
}

// get performs a rate-limited GET request to a BDL endpoint.
func (c *Client) get(ctx context.Context, path string, params url.Values) (*paginatedResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Path: path, StatusCode: resp.StatusCode, Err: errors.New(truncate(body, 200))}
	}

	var result paginatedResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &TransportError{Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return &result, nil
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
