package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"

	"storefront-backend/config"
	"storefront-backend/internal/delivery/http/middleware"
	v1 "storefront-backend/internal/delivery/http/v1"
	"storefront-backend/internal/infrastructure/cache"
	"storefront-backend/internal/infrastructure/facebook"
	"storefront-backend/internal/repository/postgres"
	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/storage"
	"storefront-backend/pkg/utils"
)

const (
	serviceName    = "storefront-api"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	// Initialize Database
	pgxPool, err := postgres.NewPgxPool(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pgxPool.Close()
	log.Info().Msg("Successfully connected to PostgreSQL via pgx")

	if cfg.RunMigrations {
		if err := postgres.RunMigrations(ctx, pgxPool); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	// Initialize Repositories
	productRepo := postgres.NewProductRepository(pgxPool)
	wishlistRepo := postgres.NewWishlistRepository(pgxPool)
	contentRepo := postgres.NewContentRepository(pgxPool)

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Conversions API is optional; a nil client drops events.
	capi := facebook.NewCAPIClient(cfg.FBPixelID, cfg.FBAccessToken, cfg.FBAPIVersion)

	// --- Modules Initialization ---
	catalogUC := usecase.NewCatalogUsecase(productRepo, memCache, cfg)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo, capi)
	contentUC := usecase.NewContentUsecase(contentRepo, memCache, cfg)
	sitemapUC := usecase.NewSitemapUsecase(catalogUC, productRepo, memCache, cfg)

	handlers := v1.Handlers{
		Wishlist: v1.NewWishlistHandler(wishlistUC),
		Catalog:  v1.NewCatalogHandler(catalogUC),
		Content:  v1.NewContentHandler(contentUC),
		Sitemap:  v1.NewSitemapHandler(sitemapUC),
		DB:       pgxPool,
	}

	// --- Storage Module (R2) ---
	if cfg.StorageEnabled() {
		r2Storage, err := storage.NewR2Storage(
			ctx,
			cfg.R2AccountID,
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			cfg.R2BucketName,
			cfg.R2PublicURL,
			cfg.R2UploadTimeout,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize R2 Storage")
		}
		handlers.Upload = v1.NewUploadHandler(r2Storage, cfg.MaxUploadSizeMB)
	} else {
		log.Warn().Msg("R2 storage not configured, media uploads disabled")
	}

	mux := v1.NewRouter(handlers)

	// Initialize Rate Limiter with lifecycle management
	// cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		ctx,
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		time.Minute,
		3*time.Minute,
	)

	// Recover -> Identity -> CORS -> Request Logger -> Rate Limit -> Gzip -> mux
	handler := gziphandler.GzipHandler(mux)
	handler = rateLimiter.Middleware()(handler)
	handler = middleware.RequestLogger(handler)
	handler = middleware.NewCORSMiddleware(cfg)(handler)
	handler = middleware.NewIdentityMiddleware(cfg)(handler)
	handler = middleware.Recoverer(handler)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart(serviceName, serviceVersion, cfg.Port)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := capi.Wait(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Dropped pending Conversions API events")
	}

	logger.ServiceStop(serviceName)
}
