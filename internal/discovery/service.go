package discovery

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JTanner04/InstagramSpots/internal/cache"
	"github.com/JTanner04/InstagramSpots/internal/config"
	"github.com/JTanner04/InstagramSpots/internal/location"
	"github.com/JTanner04/InstagramSpots/internal/providers"
	"github.com/JTanner04/InstagramSpots/internal/providers/mapbox"
	"github.com/JTanner04/InstagramSpots/internal/providers/unsplash"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

const (
	// maxResults is the smallest cap applied to the enriched result set.
	maxResults = 80

	defaultPhotoConcurrency = 6
)

// Geocoder runs forward keyword searches around a point.
type Geocoder interface {
	HasToken() bool
	Forward(ctx context.Context, params mapbox.SearchParams) ([]mapbox.Feature, error)
}

// PhotoProvider finds a representative photo for a free-text query.
type PhotoProvider interface {
	Enabled() bool
	SearchPhoto(ctx context.Context, query string) (string, error)
}

// Cache stores discovery results and photo lookups between calls.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Service discovers photogenic places around an origin.
type Service interface {
	FindPlaces(ctx context.Context, req Request) (*Result, error)
}

// Options tune a discovery service. Zero values select defaults.
type Options struct {
	MinCount          int
	SearchConcurrency int
	PhotoConcurrency  int
	Keywords          *KeywordCatalog

	// Cache is optional. ResultTTL and PhotoTTL of zero disable the
	// corresponding entries.
	Cache     Cache
	ResultTTL time.Duration
	PhotoTTL  time.Duration
}

type discoveryService struct {
	geocoder Geocoder
	regions  location.Service
	photos   PhotoProvider
	opts     Options
	logger   *slog.Logger
}

// NewDiscoveryService creates a discovery service backed by Mapbox and
// Unsplash. store may be nil to disable caching.
func NewDiscoveryService(cfg *config.Config, logger *slog.Logger, regions location.Service, store Cache) (Service, error) {
	keywords := DefaultKeywordCatalog()
	if cfg.Discovery.KeywordsFile != "" {
		var err error
		keywords, err = LoadKeywordCatalog(cfg.Discovery.KeywordsFile)
		if err != nil {
			return nil, err
		}
	}

	fetcher := providers.NewFetcher(nil, cfg.Providers.RetryPolicy(), logger)
	geocoder := mapbox.NewClient(cfg.Providers.Mapbox.ClientConfig(), fetcher, logger)
	photos := unsplash.NewClient(cfg.Providers.Unsplash.ClientConfig(), fetcher, logger)

	if !geocoder.HasToken() {
		logger.Warn("mapbox token not configured, discovery will return no places")
	}
	if !photos.Enabled() {
		logger.Warn("unsplash access key not configured, places will not have photos")
	}

	opts := Options{
		MinCount:          cfg.Discovery.MinCount,
		SearchConcurrency: cfg.Discovery.SearchConcurrency,
		PhotoConcurrency:  cfg.Discovery.PhotoConcurrency,
		Keywords:          keywords,
		ResultTTL:         cfg.Cache.ResultTTL,
		PhotoTTL:          cfg.Cache.PhotoTTL,
	}
	if store != nil {
		opts.Cache = store
	}

	return NewDiscoveryServiceWithProviders(logger, opts, geocoder, regions, photos), nil
}

// NewDiscoveryServiceWithProviders creates a discovery service from its
// providers. photos may be nil, in which case places are not enriched.
func NewDiscoveryServiceWithProviders(
	logger *slog.Logger,
	opts Options,
	geocoder Geocoder,
	regions location.Service,
	photos PhotoProvider,
) Service {
	if opts.MinCount <= 0 {
		opts.MinCount = DefaultMinCount
	}
	if opts.SearchConcurrency <= 0 {
		opts.SearchConcurrency = 1
	}
	if opts.PhotoConcurrency <= 0 {
		opts.PhotoConcurrency = defaultPhotoConcurrency
	}
	if opts.Keywords == nil {
		opts.Keywords = DefaultKeywordCatalog()
	}
	return &discoveryService{
		geocoder: geocoder,
		regions:  regions,
		photos:   photos,
		opts:     opts,
		logger:   logger.With("component", "discovery-service"),
	}
}

// FindPlaces runs the layered keyword search for req and returns the
// filtered, enriched places in search order.
//
// A missing geocoding credential yields an empty result together with
// ErrMissingGeocodingToken. Provider failures are logged and skipped; only
// an invalid origin or cancellation of ctx fail the call.
func (s *discoveryService) FindPlaces(ctx context.Context, req Request) (*Result, error) {
	if err := req.Origin.Validate(); err != nil {
		return nil, err
	}

	req = s.normalize(req)
	result := &Result{
		SearchID: uuid.NewString(),
		Places:   []types.Place{},
		RadiusKm: Radius(req.Preferences.Mode, req.Preferences.DriveMinutes, req.Preferences.FlyHours),
	}

	if !s.geocoder.HasToken() {
		s.logger.Warn("geocoding token missing, skipping discovery")
		return result, ErrMissingGeocodingToken
	}

	logger := s.logger.With("search_id", result.SearchID)
	logger.Debug("finding places",
		"origin", req.Origin.String(),
		"vibe", req.Preferences.Vibe,
		"mode", req.Preferences.Mode,
		"radius_km", result.RadiusKm,
		"min_count", req.MinCount,
	)

	cacheKey := s.resultKey(req)
	if cached, ok := s.cachedResult(ctx, cacheKey); ok {
		cached.SearchID = result.SearchID
		logger.Debug("serving cached result", "places", len(cached.Places))
		return cached, nil
	}

	// A degraded result is returned but never cached
	degraded := false

	// The origin region is only needed for the in-state filter
	if !req.Preferences.OutOfState {
		region, ok, err := s.resolveRegion(ctx, req.Origin)
		if err != nil {
			return nil, err
		}
		result.OriginRegion = region
		degraded = !ok
	}

	acc, err := s.search(ctx, req, result)
	if err != nil {
		return nil, err
	}

	places := Dedupe(acc.Places())
	places = FilterByDistance(places, result.RadiusKm)
	if !req.Preferences.OutOfState {
		places = FilterByRegion(places, result.OriginRegion)
	}

	limit := max(req.MinCount, maxResults)
	if len(places) > limit {
		places = places[:limit]
	}

	places, err = s.enrich(ctx, places)
	if err != nil {
		return nil, err
	}
	result.Places = places

	logger.Info("discovery complete",
		"candidates", acc.Len(),
		"places", len(result.Places),
		"queries", result.QueriesIssued,
		"failed_queries", result.QueriesFailed,
		"region", result.OriginRegion.Label(),
	)

	if degraded || result.QueriesFailed > 0 {
		logger.Debug("not caching degraded result",
			"failed_queries", result.QueriesFailed,
			"region_resolved", !degraded,
		)
		return result, nil
	}
	s.storeResult(ctx, cacheKey, result)

	return result, nil
}

func (s *discoveryService) normalize(req Request) Request {
	prefs := req.Preferences
	prefs.Vibe = ParseVibe(string(prefs.Vibe))
	prefs.Mode = ParseTravelMode(string(prefs.Mode))

	// The unused budget does not affect the search
	switch prefs.Mode {
	case TravelModeFly:
		prefs.DriveMinutes = 0
		prefs.FlyHours = budget(prefs.FlyHours)
	default:
		prefs.DriveMinutes = budget(prefs.DriveMinutes)
		prefs.FlyHours = 0
	}

	req.Preferences = prefs
	if req.MinCount <= 0 {
		req.MinCount = s.opts.MinCount
	}
	return req
}

// resolveRegion looks up the origin region. ok is false when the lookup
// failed and the region filter will be skipped.
func (s *discoveryService) resolveRegion(ctx context.Context, origin types.Coords) (region types.Region, ok bool, err error) {
	if s.regions == nil {
		return types.Region{}, true, nil
	}

	region, err = s.regions.ResolveRegion(ctx, origin)
	if err != nil {
		if ctx.Err() != nil {
			return types.Region{}, false, ctx.Err()
		}
		s.logger.Warn("origin region unknown, skipping region filter",
			"origin", origin.String(),
			"error", err,
		)
		return types.Region{}, false, nil
	}
	return region, true, nil
}

// search runs the keyword groups in order until the accumulator is
// satisfied. Keywords are issued in windows of SearchConcurrency; a window is
// always added whole and in keyword order.
func (s *discoveryService) search(ctx context.Context, req Request, result *Result) (*Accumulator, error) {
	acc := NewAccumulator(req.MinCount)
	bound := types.BoundAround(req.Origin, result.RadiusKm)

	for _, group := range s.opts.Keywords.Groups(req.Preferences.Vibe) {
		for start := 0; start < len(group); start += s.opts.SearchConcurrency {
			window := group[start:min(start+s.opts.SearchConcurrency, len(group))]

			batches, failed, err := s.searchWindow(ctx, window, mapbox.SearchParams{
				Proximity: req.Origin,
				Bound:     bound,
			})
			if err != nil {
				return nil, err
			}

			result.QueriesIssued += len(window)
			result.QueriesFailed += failed

			for _, features := range batches {
				acc.Add(toPlaces(features, req.Origin))
			}
			if acc.Satisfied() {
				return acc, nil
			}
		}
	}

	return acc, nil
}

func (s *discoveryService) searchWindow(ctx context.Context, keywords []string, params mapbox.SearchParams) ([][]mapbox.Feature, int, error) {
	batches := make([][]mapbox.Feature, len(keywords))
	failures := make([]bool, len(keywords))

	g, gctx := errgroup.WithContext(ctx)
	for i, keyword := range keywords {
		g.Go(func() error {
			p := params
			p.Query = keyword

			features, err := s.geocoder.Forward(gctx, p)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.logger.Warn("keyword search failed", "keyword", keyword, "error", err)
				failures[i] = true
				return nil
			}
			batches[i] = features
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	failed := 0
	for _, f := range failures {
		if f {
			failed++
		}
	}
	return batches, failed, nil
}

func toPlaces(features []mapbox.Feature, origin types.Coords) []types.Place {
	places := make([]types.Place, 0, len(features))
	for _, f := range features {
		places = append(places, types.NewPlace(f.PlaceInfo(), origin))
	}
	return places
}

type resultKeyParts struct {
	Latitude    float64     `json:"lat"`
	Longitude   float64     `json:"lon"`
	Preferences Preferences `json:"prefs"`
	MinCount    int         `json:"minCount"`
}

// resultKey rounds the origin to roughly 100m so nearby requests share an
// entry.
func (s *discoveryService) resultKey(req Request) string {
	if s.opts.Cache == nil || s.opts.ResultTTL <= 0 {
		return ""
	}
	key, err := cache.Key(cache.NamespaceDiscover, resultKeyParts{
		Latitude:    roundTo(req.Origin.Latitude, 3),
		Longitude:   roundTo(req.Origin.Longitude, 3),
		Preferences: req.Preferences,
		MinCount:    req.MinCount,
	})
	if err != nil {
		s.logger.Warn("failed to build cache key", "error", err)
		return ""
	}
	return key
}

func (s *discoveryService) cachedResult(ctx context.Context, key string) (*Result, bool) {
	if key == "" {
		return nil, false
	}
	var cached Result
	ok, err := s.opts.Cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("result cache read failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if cached.Places == nil {
		cached.Places = []types.Place{}
	}
	return &cached, true
}

func (s *discoveryService) storeResult(ctx context.Context, key string, result *Result) {
	if key == "" {
		return
	}
	if err := s.opts.Cache.Set(ctx, key, result, s.opts.ResultTTL); err != nil {
		s.logger.Warn("result cache write failed", "error", err)
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
