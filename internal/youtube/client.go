// Package youtube lists and fetches caption tracks from YouTube's public watch
// page and timedtext endpoint.
package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL   = "https://www.youtube.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	maxWatchPageBytes = 6 * 1024 * 1024
	maxTimedTextBytes = 2 * 1024 * 1024
)

// Client talks to YouTube over plain HTTP. It performs no retries.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	acceptLanguage string
	userAgent      string
	logger         *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithAcceptLanguage sets the Accept-Language header sent with watch page requests.
func WithAcceptLanguage(lang string) Option {
	return func(c *Client) { c.acceptLanguage = lang }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a Client with a 15s HTTP timeout unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		baseURL:        defaultBaseURL,
		acceptLanguage: "en-US",
		userAgent:      defaultUserAgent,
		logger:         logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTranscripts fetches the watch page for videoID and returns the caption
// tracks it advertises.
func (c *Client) ListTranscripts(ctx context.Context, videoID string) (*TranscriptList, error) {
	if strings.HasPrefix(videoID, "http://") || strings.HasPrefix(videoID, "https://") {
		return nil, &Error{VideoID: videoID, Err: ErrInvalidVideoID}
	}

	watchURL := c.baseURL + "/watch?v=" + url.QueryEscape(videoID)
	c.logger.WithField("video_id", videoID).Debug("youtube: fetching watch page")

	body, err := c.get(ctx, watchURL, maxWatchPageBytes)
	if err != nil {
		return nil, fmt.Errorf("watch page for %s: %w", videoID, err)
	}
	return parseWatchPage(videoID, body)
}

// Fetch downloads and parses the timedtext payload of t.
func (c *Client) Fetch(ctx context.Context, t Transcript) ([]Snippet, error) {
	if t.baseURL == "" {
		return nil, fmt.Errorf("transcript %s/%s has no caption url", t.VideoID, t.LanguageCode)
	}

	u := strings.Replace(t.baseURL, "&fmt=srv3", "", 1)
	if strings.HasPrefix(u, "/") {
		u = c.baseURL + u
	}
	c.logger.WithFields(logrus.Fields{
		"video_id":      t.VideoID,
		"language_code": t.LanguageCode,
		"generated":     t.IsGenerated,
	}).Debug("youtube: fetching timedtext")

	body, err := c.get(ctx, u, maxTimedTextBytes)
	if err != nil {
		return nil, fmt.Errorf("timedtext for %s: %w", t.VideoID, err)
	}
	snippets, err := parseTimedText(body)
	if err != nil {
		return nil, fmt.Errorf("timedtext for %s: %w", t.VideoID, err)
	}
	return snippets, nil
}

func (c *Client) get(ctx context.Context, u string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.acceptLanguage != "" {
		req.Header.Set("Accept-Language", c.acceptLanguage)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrTooManyRequests
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}
