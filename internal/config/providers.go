package config

import (
	"github.com/JTanner04/InstagramSpots/internal/providers"
	"github.com/JTanner04/InstagramSpots/internal/providers/mapbox"
	"github.com/JTanner04/InstagramSpots/internal/providers/openstreetmap"
	"github.com/JTanner04/InstagramSpots/internal/providers/unsplash"
)

// RetryPolicy converts the retry settings for the shared fetcher
func (p ProvidersConfig) RetryPolicy() providers.RetryPolicy {
	return providers.RetryPolicy{
		MaxRetries:      uint64(max(p.Retry.MaxRetries, 0)),
		InitialInterval: p.Retry.InitialInterval,
		MaxInterval:     p.Retry.MaxInterval,
	}
}

func (m MapboxConfig) ClientConfig() mapbox.Config {
	return mapbox.Config{
		Token:          m.Token,
		BaseURL:        m.BaseURL,
		Timeout:        m.Timeout,
		ReverseTimeout: m.ReverseTimeout,
		Limit:          m.Limit,
		Language:       m.Language,
	}
}

func (u UnsplashConfig) ClientConfig() unsplash.Config {
	return unsplash.Config{
		AccessKey: u.AccessKey,
		BaseURL:   u.BaseURL,
		Timeout:   u.Timeout,
	}
}

func (o OpenStreetMapConfig) ClientConfig() openstreetmap.Config {
	return openstreetmap.Config{
		BaseURL:   o.BaseURL,
		UserAgent: o.UserAgent,
		Timeout:   o.Timeout,
	}
}
