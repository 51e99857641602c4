package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/JTanner04/InstagramSpots/internal/cache"
	"github.com/JTanner04/InstagramSpots/internal/config"
	"github.com/JTanner04/InstagramSpots/internal/discovery"
	"github.com/JTanner04/InstagramSpots/internal/location"

	_ "github.com/JTanner04/InstagramSpots/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	handler          http.Handler
	logger           *slog.Logger
	locationService  location.Service
	discoveryService discovery.Service
	cfg              *config.Config
	cache            *cache.RedisCache
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	locationSvc := location.NewLocationService(cfg, logger)

	// The cache is optional; discovery works without it
	var store discovery.Cache
	var redisCache *cache.RedisCache
	if cfg.Cache.Enabled() {
		var err error
		redisCache, err = cache.NewRedisCache(ctx, cache.Config{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		}, logger)
		if err != nil {
			logger.Warn("redis unavailable, continuing without cache", "error", err)
		} else {
			store = redisCache
		}
	}

	// Initialize discovery service
	discoverySvc, err := discovery.NewDiscoveryService(cfg, logger, locationSvc, store)
	if err != nil {
		return nil, fmt.Errorf("failed to create discovery service: %w", err)
	}

	app := newApp(cfg, logger, locationSvc, discoverySvc)
	app.cache = redisCache
	return app, nil
}

// newApp wires the router around already constructed services
func newApp(cfg *config.Config, logger *slog.Logger, locationSvc location.Service, discoverySvc discovery.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))

	app := &App{
		router:           router,
		logger:           logger,
		locationService:  locationSvc,
		discoveryService: discoverySvc,
		cfg:              cfg,
	}

	// Register routes
	app.registerRoutes()

	app.handler = cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	})(router)

	return app
}

// Handler returns the HTTP handler with CORS applied
func (app *App) Handler() http.Handler {
	return app.handler
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      app.handler,
		ReadTimeout:  app.cfg.Server.ReadTimeout,
		WriteTimeout: app.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")

	timeout := app.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}

// Close releases external connections
func (app *App) Close() error {
	if app.cache != nil {
		return app.cache.Close()
	}
	return nil
}
