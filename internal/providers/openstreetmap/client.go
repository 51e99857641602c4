package openstreetmap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JTanner04/InstagramSpots/internal/providers"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=39.11&lon=-107.65&format=json&zoom=5
const (
	baseURL = "https://nominatim.openstreetmap.org/reverse"

	// zoom 5 resolves to state level
	stateZoom = 5

	defaultTimeout   = 8 * time.Second
	defaultUserAgent = "insta-spots/1.0"
)

type Config struct {
	BaseURL   string
	UserAgent string
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
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger.With("component", "openstreetmap-client"),
	}
}

func (c *Client) Name() string {
	return "openstreetmap"
}

// Lookup performs a state-level reverse lookup.
func (c *Client) Lookup(ctx context.Context, coords types.Coords) (*LookupAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", coords.Latitude))
	q.Set("lon", fmt.Sprintf("%f", coords.Longitude))
	q.Set("format", "json")
	q.Set("zoom", fmt.Sprintf("%d", stateZoom))
	q.Set("accept-language", "en")
	u.RawQuery = q.Encode()

	// Nominatim's usage policy requires an identifying User-Agent
	header := http.Header{}
	header.Set("User-Agent", c.cfg.UserAgent)

	body, err := c.fetcher.Get(ctx, u.String(), header, c.cfg.Timeout)
	if err != nil {
		return nil, err
	}

	var apiResp LookupAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// ReverseRegion returns the state or province containing coords.
func (c *Client) ReverseRegion(ctx context.Context, coords types.Coords) (types.Region, error) {
	resp, err := c.Lookup(ctx, coords)
	if err != nil {
		return types.Region{}, err
	}
	if resp.Error != "" {
		// e.g. "Unable to geocode" over open water
		c.logger.Debug("no region for coordinates", "coords", coords.String(), "reason", resp.Error)
		return types.Region{}, nil
	}

	return types.Region{
		Name: resp.Address.State,
		Code: strings.ToUpper(resp.Address.ISO31662Lvl4),
	}, nil
}
