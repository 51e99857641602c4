package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/JTanner04/InstagramSpots/internal/cache"
	"github.com/JTanner04/InstagramSpots/internal/config"
	"github.com/JTanner04/InstagramSpots/internal/discovery"
	"github.com/JTanner04/InstagramSpots/internal/location"
	"github.com/JTanner04/InstagramSpots/internal/types"
)

type Options struct {
	Latitude     float64 `long:"lat" description:"Origin latitude in decimal degrees" required:"true"`
	Longitude    float64 `long:"lon" description:"Origin longitude in decimal degrees" required:"true"`
	Vibe         string  `short:"v" long:"vibe" description:"Search vibe" choice:"instagrammable" choice:"nature" choice:"city" choice:"foodie" choice:"art" choice:"nightlife" default:"instagrammable"`
	Mode         string  `short:"m" long:"mode" description:"Travel mode" choice:"drive" choice:"fly" default:"drive"`
	DriveMinutes float64 `long:"drive-minutes" description:"Driving budget in minutes" default:"90"`
	FlyHours     float64 `long:"fly-hours" description:"Flying budget in hours" default:"2"`
	MinCount     int     `short:"n" long:"min-count" description:"Soft minimum of raw candidates to collect (0 uses config)"`
	OutOfState   bool    `long:"out-of-state" description:"Include places outside the origin's state"`
	ConfigFile   string  `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file"`
	Format       string  `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Output       string  `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Options) error {
	cfg, err := config.LoadFile(opts.ConfigFile)
	if err != nil {
		return err
	}

	// stdout is reserved for the result
	logger := cfg.NewLoggerTo(os.Stderr)

	var store discovery.Cache
	if cfg.Cache.Enabled() {
		redisCache, err := cache.NewRedisCache(ctx, cache.Config{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		}, logger)
		if err != nil {
			logger.Warn("redis unavailable, continuing without cache", "error", err)
		} else {
			defer func() { _ = redisCache.Close() }()
			store = redisCache
		}
	}

	svc, err := discovery.NewDiscoveryService(cfg, logger, location.NewLocationService(cfg, logger), store)
	if err != nil {
		return err
	}

	result, err := svc.FindPlaces(ctx, buildRequest(opts))
	if errors.Is(err, discovery.ErrMissingGeocodingToken) {
		return fmt.Errorf("%w: set MAPBOX_TOKEN or providers.mapbox.token", err)
	}
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeResult(out, result, opts.Format); err != nil {
		return err
	}

	logger.Info("places found", "count", len(result.Places), "radius_km", result.RadiusKm)
	return nil
}

func buildRequest(opts Options) discovery.Request {
	return discovery.Request{
		Origin: types.NewCoords(opts.Latitude, opts.Longitude),
		Preferences: discovery.Preferences{
			Vibe:         discovery.ParseVibe(opts.Vibe),
			Mode:         discovery.ParseTravelMode(opts.Mode),
			DriveMinutes: opts.DriveMinutes,
			FlyHours:     opts.FlyHours,
			OutOfState:   opts.OutOfState,
		},
		MinCount: opts.MinCount,
	}
}

func writeResult(w io.Writer, result *discovery.Result, format string) error {
	var data []byte
	var err error

	if format == "yaml" {
		// Round-trip through JSON so YAML keys match the API field names
		var generic any
		raw, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := json.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		data, err = yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	} else {
		data, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		data = append(data, '\n')
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
