package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JTanner04/InstagramSpots/internal/config"
	"github.com/JTanner04/InstagramSpots/internal/providers"
	"github.com/JTanner04/InstagramSpots/internal/providers/mapbox"
	"github.com/JTanner04/InstagramSpots/internal/providers/openstreetmap"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

var ErrRegionNotFound = errors.New("no region found for coordinates")

// Service resolves the administrative region for a coordinate
type Service interface {
	// ResolveRegion returns the state or province containing coords
	ResolveRegion(ctx context.Context, coords types.Coords) (types.Region, error)
}

// RegionProvider defines the interface for reverse geocoding providers
type RegionProvider interface {
	Name() string
	ReverseRegion(ctx context.Context, coords types.Coords) (types.Region, error)
}

// locationService implements the Service interface
type locationService struct {
	providers []RegionProvider
	logger    *slog.Logger
}

// NewLocationService creates a location service backed by the Mapbox
// reverse geocoder, when a token is configured, and OpenStreetMap Nominatim.
func NewLocationService(cfg *config.Config, logger *slog.Logger) Service {
	fetcher := providers.NewFetcher(nil, cfg.Providers.RetryPolicy(), logger)

	var regionProviders []RegionProvider
	mb := mapbox.NewClient(cfg.Providers.Mapbox.ClientConfig(), fetcher, logger)
	if mb.HasToken() {
		regionProviders = append(regionProviders, mb)
	}
	if cfg.Providers.OpenStreetMap.Enabled {
		osm := openstreetmap.NewClient(cfg.Providers.OpenStreetMap.ClientConfig(), fetcher, logger)
		regionProviders = append(regionProviders, osm)
	}

	return NewLocationServiceWithProviders(logger, regionProviders...)
}

// NewLocationServiceWithProviders creates a location service that consults
// providers in order until one of them resolves a region
func NewLocationServiceWithProviders(logger *slog.Logger, regionProviders ...RegionProvider) Service {
	return &locationService{
		providers: regionProviders,
		logger:    logger.With("component", "location-service"),
	}
}

// ResolveRegion returns the first non-empty region reported by a provider.
// It returns ErrRegionNotFound when every provider answered without a region,
// and the joined provider errors when none of them answered.
func (s *locationService) ResolveRegion(ctx context.Context, coords types.Coords) (types.Region, error) {
	if err := coords.Validate(); err != nil {
		return types.Region{}, err
	}

	var errs []error
	for _, p := range s.providers {
		region, err := p.ReverseRegion(ctx, coords)
		if err != nil {
			if ctx.Err() != nil {
				return types.Region{}, ctx.Err()
			}
			s.logger.Warn("region lookup failed",
				"provider", p.Name(),
				"coords", coords.String(),
				"error", err,
			)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}

		if region.IsZero() {
			s.logger.Debug("provider found no region", "provider", p.Name(), "coords", coords.String())
			continue
		}

		s.logger.Debug("resolved region",
			"provider", p.Name(),
			"region", region.Label(),
			"code", region.Code,
		)
		return region, nil
	}

	if len(errs) > 0 && len(errs) == len(s.providers) {
		return types.Region{}, fmt.Errorf("failed to resolve region: %w", errors.Join(errs...))
	}
	return types.Region{}, ErrRegionNotFound
}
