// Package fetcher provides the single-request HTTP retrieval used for article
// and search pages.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
)

// FetchResult contains the fetched HTML and metadata.
type FetchResult struct {
	HTML      []byte
	FinalURL  string        // URL after following redirects
	FetchTime time.Duration // request start to body read
}

// Options configures the fetcher behavior.
type Options struct {
	UserAgent      string
	TimeoutSeconds int
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		UserAgent:      "wiki/1.0 (Terminal Wikipedia reader)",
		TimeoutSeconds: 15,
	}
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: status %d", e.URL, e.Code)
}

// IsNotFound reports whether err carries a 404 response.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client issues GET requests with a fixed user agent and timeout.
// A single instance is reused across requests of one invocation.
type Client struct {
	http   *http.Client
	opts   Options
	logger *zap.Logger
}

// New creates a client. A nil logger disables logging.
func New(o Options, logger *zap.Logger) *Client {
	defaults := DefaultOptions()
	if o.UserAgent == "" {
		o.UserAgent = defaults.UserAgent
	}
	if o.TimeoutSeconds <= 0 {
		o.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:   &http.Client{Timeout: time.Duration(o.TimeoutSeconds) * time.Second},
		opts:   o,
		logger: logger,
	}
}

// Get fetches url and reads the whole body. Responses outside 2xx are
// returned as *StatusError and carry no body.
func (c *Client) Get(ctx context.Context, url string) (*FetchResult, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", url)
	}
	defer resp.Body.Close()

	finalURL := resp.Request.URL.String()
	c.logger.Debug("fetched",
		zap.String("url", url),
		zap.String("final_url", finalURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}

	return &FetchResult{
		HTML:      body,
		FinalURL:  finalURL,
		FetchTime: time.Since(start),
	}, nil
}
