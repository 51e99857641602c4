package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Providers ProvidersConfig
	Discovery DiscoveryConfig
	Cache     CacheConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            int
	GinMode         string // debug, release, test
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ProvidersConfig holds credentials and tuning for external APIs
type ProvidersConfig struct {
	Mapbox        MapboxConfig
	Unsplash      UnsplashConfig
	OpenStreetMap OpenStreetMapConfig
	Retry         RetryConfig
}

type MapboxConfig struct {
	Token          string
	BaseURL        string
	Timeout        time.Duration
	ReverseTimeout time.Duration
	Limit          int
	Language       string
}

type UnsplashConfig struct {
	AccessKey string
	BaseURL   string
	Timeout   time.Duration
}

// OpenStreetMapConfig configures the Nominatim region fallback
type OpenStreetMapConfig struct {
	Enabled   bool
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DiscoveryConfig holds search tuning
type DiscoveryConfig struct {
	MinCount          int    // Soft minimum of raw candidates per search
	SearchConcurrency int    // Keywords searched at once, 1 is sequential
	PhotoConcurrency  int    // Photo lookups in flight at once
	KeywordsFile      string // Optional YAML keyword catalog
}

// CacheConfig holds the optional Redis cache configuration
type CacheConfig struct {
	Redis     RedisConfig
	ResultTTL time.Duration
	PhotoTTL  time.Duration
}

type RedisConfig struct {
	Addr     string // empty disables caching
	Password string
	DB       int
}

// Enabled reports whether a Redis address is configured
func (c CacheConfig) Enabled() bool {
	return strings.TrimSpace(c.Redis.Addr) != ""
}

// Load reads configuration from the default config file locations and
// environment variables
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from path, or from the default locations when
// path is empty, and environment variables
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.insta-spots")
	}

	setDefaults(v)

	// Read from environment variables, e.g. INSTA_SPOTS_SERVER_PORT
	v.SetEnvPrefix("INSTA_SPOTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider credentials are also read from their conventional names
	if err := v.BindEnv("providers.mapbox.token", "INSTA_SPOTS_PROVIDERS_MAPBOX_TOKEN", "MAPBOX_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}
	if err := v.BindEnv("providers.unsplash.accessKey", "INSTA_SPOTS_PROVIDERS_UNSPLASH_ACCESSKEY", "UNSPLASH_ACCESS_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginMode", "release")
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 90*time.Second)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("providers.mapbox.token", "")
	v.SetDefault("providers.mapbox.baseURL", "")
	v.SetDefault("providers.mapbox.timeout", 12*time.Second)
	v.SetDefault("providers.mapbox.reverseTimeout", 8*time.Second)
	v.SetDefault("providers.mapbox.limit", 10)
	v.SetDefault("providers.mapbox.language", "en")
	v.SetDefault("providers.unsplash.accessKey", "")
	v.SetDefault("providers.unsplash.baseURL", "")
	v.SetDefault("providers.unsplash.timeout", 10*time.Second)
	v.SetDefault("providers.openstreetmap.enabled", true)
	v.SetDefault("providers.openstreetmap.baseURL", "")
	v.SetDefault("providers.openstreetmap.userAgent", "insta-spots/1.0")
	v.SetDefault("providers.openstreetmap.timeout", 8*time.Second)
	v.SetDefault("providers.retry.maxRetries", 2)
	v.SetDefault("providers.retry.initialInterval", 250*time.Millisecond)
	v.SetDefault("providers.retry.maxInterval", 2*time.Second)

	v.SetDefault("discovery.minCount", 50)
	v.SetDefault("discovery.searchConcurrency", 1)
	v.SetDefault("discovery.photoConcurrency", 6)
	v.SetDefault("discovery.keywordsFile", "")

	v.SetDefault("cache.redis.addr", "")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.resultTTL", 15*time.Minute)
	v.SetDefault("cache.photoTTL", 24*time.Hour)
}

// Validate rejects settings the services cannot run with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Discovery.MinCount < 0 {
		return fmt.Errorf("invalid discovery.minCount %d", c.Discovery.MinCount)
	}
	if c.Discovery.SearchConcurrency < 1 {
		return fmt.Errorf("invalid discovery.searchConcurrency %d", c.Discovery.SearchConcurrency)
	}
	if c.Discovery.PhotoConcurrency < 1 {
		return fmt.Errorf("invalid discovery.photoConcurrency %d", c.Discovery.PhotoConcurrency)
	}
	if c.Providers.Retry.MaxRetries < 0 {
		return fmt.Errorf("invalid providers.retry.maxRetries %d", c.Providers.Retry.MaxRetries)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger writing to stdout
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo creates a new slog.Logger based on the configuration
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
