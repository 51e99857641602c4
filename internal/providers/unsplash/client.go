package unsplash

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/JTanner04/InstagramSpots/internal/providers"
)

// API Docs: https://unsplash.com/documentation#search-photos
// Sample request: https://api.unsplash.com/search/photos?query=Red+Rocks%2C+Morrison%2C+Colorado&per_page=1&orientation=portrait&content_filter=high
const (
	baseURL = "https://api.unsplash.com/search/photos"

	defaultTimeout = 10 * time.Second
)

var ErrMissingAccessKey = errors.New("unsplash access key is not configured")

type Config struct {
	AccessKey string
	BaseURL   string
	Timeout   time.Duration
}

type Client struct {
	fetcher *providers.Fetcher
	cfg     Config
	logger  *slog.Logger
}

func NewClient(cfg Config, fetcher *providers.Fetcher, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = baseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger.With("component", "unsplash-client"),
	}
}

// Enabled reports whether an access key is configured.
func (c *Client) Enabled() bool {
	return strings.TrimSpace(c.cfg.AccessKey) != ""
}

// SearchPhoto returns the URL of the best portrait photo matching query, or an
// empty string when nothing matches.
func (c *Client) SearchPhoto(ctx context.Context, query string) (string, error) {
	if !c.Enabled() {
		return "", ErrMissingAccessKey
	}

	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("query", query)
	q.Set("per_page", "1")
	q.Set("orientation", "portrait")
	q.Set("content_filter", "high")
	u.RawQuery = q.Encode()

	header := http.Header{}
	header.Set("Authorization", "Client-ID "+c.cfg.AccessKey)
	header.Set("Accept-Version", "v1")

	body, err := c.fetcher.Get(ctx, u.String(), header, c.cfg.Timeout)
	if err != nil {
		return "", err
	}

	if !gjson.ValidBytes(body) {
		return "", errors.New("failed to decode response: invalid JSON")
	}

	hit := gjson.GetBytes(body, "results.0.urls")
	photoURL := hit.Get("regular").String()
	if photoURL == "" {
		photoURL = hit.Get("small").String()
	}

	c.logger.Debug("photo search complete", "query", query, "found", photoURL != "")

	return photoURL, nil
}
