package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"github.com/JTanner04/InstagramSpots/internal/providers"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

// API Docs: https://docs.mapbox.com/api/search/geocoding-v5/
// Sample requests:
// - https://api.mapbox.com/geocoding/v5/mapbox.places/viewpoint.json?access_token=...&proximity=-104.99,39.74&bbox=-106.0,38.9,-103.9,40.5&limit=10&language=en
// - https://api.mapbox.com/geocoding/v5/mapbox.places/-104.99,39.74.json?access_token=...&types=region&limit=1
const (
	baseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

	defaultLimit          = 10
	defaultLanguage       = "en"
	defaultTimeout        = 12 * time.Second
	defaultReverseTimeout = 8 * time.Second
)

var ErrMissingToken = errors.New("mapbox access token is not configured")

type Config struct {
	Token          string
	BaseURL        string
	Timeout        time.Duration
	ReverseTimeout time.Duration
	Limit          int
	Language       string
}

// SearchParams describes a forward geocoding query.
type SearchParams struct {
	Query     string
	Proximity types.Coords
	Bound     orb.Bound
	Limit     int
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
	if cfg.ReverseTimeout <= 0 {
		cfg.ReverseTimeout = defaultReverseTimeout
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultLimit
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	return &Client{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger.With("component", "mapbox-client"),
	}
}

func (c *Client) Name() string {
	return "mapbox"
}

// HasToken reports whether an access token is configured.
func (c *Client) HasToken() bool {
	return strings.TrimSpace(c.cfg.Token) != ""
}

// Forward runs a free-text search biased towards params.Proximity and
// constrained to params.Bound. Features that fail validation are dropped.
func (c *Client) Forward(ctx context.Context, params SearchParams) ([]Feature, error) {
	if !c.HasToken() {
		return nil, ErrMissingToken
	}

	limit := params.Limit
	if limit <= 0 {
		limit = c.cfg.Limit
	}

	u, err := c.endpoint(url.PathEscape(params.Query))
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("access_token", c.cfg.Token)
	q.Set("proximity", formatLonLat(params.Proximity.Longitude, params.Proximity.Latitude))
	q.Set("bbox", formatBound(params.Bound))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("language", c.cfg.Language)
	u.RawQuery = q.Encode()

	apiResp, err := c.fetch(ctx, u, c.cfg.Timeout)
	if err != nil {
		return nil, err
	}

	features := make([]Feature, 0, len(apiResp.Features))
	for _, raw := range apiResp.Features {
		f, err := parseFeature(raw)
		if err != nil {
			c.logger.Debug("skipping feature", "query", params.Query, "error", err)
			continue
		}
		features = append(features, f)
	}

	c.logger.Debug("forward geocode complete",
		"query", params.Query,
		"features", len(apiResp.Features),
		"valid", len(features),
	)

	return features, nil
}

// ReverseRegion returns the administrative region containing coords. A zero
// Region with a nil error means the point is not inside any region.
func (c *Client) ReverseRegion(ctx context.Context, coords types.Coords) (types.Region, error) {
	if !c.HasToken() {
		return types.Region{}, ErrMissingToken
	}

	u, err := c.endpoint(formatLonLat(coords.Longitude, coords.Latitude))
	if err != nil {
		return types.Region{}, err
	}

	q := u.Query()
	q.Set("access_token", c.cfg.Token)
	q.Set("types", "region")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	apiResp, err := c.fetch(ctx, u, c.cfg.ReverseTimeout)
	if err != nil {
		return types.Region{}, err
	}

	if len(apiResp.Features) == 0 {
		return types.Region{}, nil
	}

	f := apiResp.Features[0]
	code, _ := f.Properties["short_code"].(string)
	return types.Region{Name: f.Text, Code: strings.ToUpper(code)}, nil
}

// endpoint appends an already escaped path segment to the base URL.
func (c *Client) endpoint(segment string) (*url.URL, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	return u.JoinPath(segment + ".json"), nil
}

func (c *Client) fetch(ctx context.Context, u *url.URL, timeout time.Duration) (*GeocodeAPIResponse, error) {
	body, err := c.fetcher.Get(ctx, u.String(), nil, timeout)
	if err != nil {
		return nil, err
	}

	var apiResp GeocodeAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &apiResp, nil
}

func formatLonLat(lon, lat float64) string {
	return fmt.Sprintf("%f,%f", lon, lat)
}

// formatBound renders minLon,minLat,maxLon,maxLat.
func formatBound(b orb.Bound) string {
	return fmt.Sprintf("%f,%f,%f,%f", b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat())
}
