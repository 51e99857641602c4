package discovery

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/JTanner04/InstagramSpots/internal/cache"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

// enrich returns a copy of places with photo URLs filled in where a photo
// was found. Lookup failures leave the place without a photo.
func (s *discoveryService) enrich(ctx context.Context, places []types.Place) ([]types.Place, error) {
	out := slices.Clone(places)
	if out == nil {
		out = []types.Place{}
	}
	if s.photos == nil || !s.photos.Enabled() || len(out) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.PhotoConcurrency)

	for i, p := range places {
		g.Go(func() error {
			url, err := s.photoFor(gctx, p.PhotoQuery())
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.logger.Debug("photo lookup failed", "place", p.Name, "error", err)
				return nil
			}
			if url != "" {
				out[i] = p.WithPhoto(url)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type photoEntry struct {
	URL string `json:"url"`
}

func (s *discoveryService) photoFor(ctx context.Context, query string) (string, error) {
	key := s.photoKey(query)
	if key != "" {
		var entry photoEntry
		ok, err := s.opts.Cache.GetJSON(ctx, key, &entry)
		if err != nil {
			s.logger.Warn("photo cache read failed", "error", err)
		} else if ok {
			return entry.URL, nil
		}
	}

	url, err := s.photos.SearchPhoto(ctx, query)
	if err != nil {
		return "", err
	}

	if key != "" && url != "" {
		if err := s.opts.Cache.Set(ctx, key, photoEntry{URL: url}, s.opts.PhotoTTL); err != nil {
			s.logger.Warn("photo cache write failed", "error", err)
		}
	}
	return url, nil
}

func (s *discoveryService) photoKey(query string) string {
	if s.opts.Cache == nil || s.opts.PhotoTTL <= 0 {
		return ""
	}
	key, err := cache.Key(cache.NamespacePhoto, query)
	if err != nil {
		return ""
	}
	return key
}
