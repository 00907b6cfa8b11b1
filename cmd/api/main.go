package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kezv166-web/medicare/internal/adapters/cache"
	"github.com/kezv166-web/medicare/internal/adapters/database"
	"github.com/kezv166-web/medicare/internal/adapters/providers/geolocation"
	"github.com/kezv166-web/medicare/internal/adapters/providers/places"
	"github.com/kezv166-web/medicare/internal/adapters/storage"
	"github.com/kezv166-web/medicare/internal/api/handlers"
	"github.com/kezv166-web/medicare/internal/api/routes"
	"github.com/kezv166-web/medicare/internal/application/services"
	domainproviders "github.com/kezv166-web/medicare/internal/domain/providers"
	"github.com/kezv166-web/medicare/internal/domain/repositories"
	"github.com/kezv166-web/medicare/internal/infrastructure/clients/postgres"
	"github.com/kezv166-web/medicare/internal/infrastructure/clients/redis"
	"github.com/kezv166-web/medicare/internal/infrastructure/observability"
	"github.com/kezv166-web/medicare/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("medicare-api", cfg.Environment)

	// Cache: Redis when reachable, in-process otherwise
	var cacheProvider domainproviders.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-process cache")
		cacheProvider = cache.NewMemoryAdapter(5 * time.Minute)
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("redis cache initialized")
	}

	// Community report storage
	var reportRepo repositories.ReportRepository
	switch cfg.Reports.Backend {
	case "postgres":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize postgres client")
		}
		defer pgClient.Close()

		adapter := database.NewReportAdapter(pgClient)
		if err := adapter.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure reports schema")
		}
		reportRepo = adapter
		log.Info().Msg("postgres report storage initialized")
	default:
		adapter, err := storage.NewFileReportAdapter(cfg.Reports.Dir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize file report storage")
		}
		reportRepo = adapter
		log.Info().Str("dir", cfg.Reports.Dir).Msg("file report storage initialized")
	}

	// Geocoding provider
	var geocodingProvider domainproviders.GeolocationProvider
	switch cfg.Geocoding.Provider {
	case "google":
		if cfg.Geocoding.APIKey == "" {
			log.Warn().Msg("GEOCODING_API_KEY is not set, using mock geocoding provider")
			geocodingProvider = geolocation.NewMockGeocodingProvider()
		} else {
			geocodingProvider = geolocation.NewGoogleGeocodingProvider(cfg.Geocoding.APIKey, cacheProvider)
		}
	default:
		geocodingProvider = geolocation.NewMockGeocodingProvider()
	}

	// Facility providers in priority order: live first, bundled fallback last
	var facilityProviders []domainproviders.FacilityProvider
	if cfg.Places.APIKey != "" {
		facilityProviders = append(facilityProviders,
			places.NewGooglePlacesProvider(cfg.Places.APIKey, cfg.Places.RequestsPerSecond))
	} else {
		log.Warn().Msg("PLACES_API_KEY is not set, serving bundled datasets only")
	}
	facilityProviders = append(facilityProviders, places.NewStaticFallbackProvider())

	// Services
	resolver := services.NewLocationResolverService(geocodingProvider, nil)
	reportService := services.NewReportService(reportRepo)
	discoveryService := services.NewDiscoveryService(
		facilityProviders,
		resolver,
		services.NewMergeService(),
		services.NewRankingService(),
		reportService,
		cacheProvider,
		cfg.Discovery,
	)

	// Handlers and router
	router := routes.NewRouter(
		handlers.NewDiscoveryHandler(discoveryService),
		handlers.NewReportHandler(reportService),
		handlers.NewGeolocationHandler(geocodingProvider),
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
