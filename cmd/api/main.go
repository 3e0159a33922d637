package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ajaniguide/ajani/backend/internal/adapters/cache"
	"github.com/ajaniguide/ajani/backend/internal/adapters/database"
	"github.com/ajaniguide/ajani/backend/internal/adapters/providers/geolocation"
	"github.com/ajaniguide/ajani/backend/internal/adapters/search"
	sheetsadapter "github.com/ajaniguide/ajani/backend/internal/adapters/sheets"
	"github.com/ajaniguide/ajani/backend/internal/api/handlers"
	"github.com/ajaniguide/ajani/backend/internal/api/routes"
	"github.com/ajaniguide/ajani/backend/internal/application/services"
	"github.com/ajaniguide/ajani/backend/internal/domain/providers"
	"github.com/ajaniguide/ajani/backend/internal/domain/repositories"
	"github.com/ajaniguide/ajani/backend/internal/infrastructure/clients/postgres"
	"github.com/ajaniguide/ajani/backend/internal/infrastructure/clients/redis"
	sheetsclient "github.com/ajaniguide/ajani/backend/internal/infrastructure/clients/sheets"
	"github.com/ajaniguide/ajani/backend/internal/infrastructure/clients/typesense"
	"github.com/ajaniguide/ajani/backend/internal/infrastructure/observability"
	"github.com/ajaniguide/ajani/backend/pkg/config"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var shutdownOTEL func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdownOTEL, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownOTEL(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized")

	// Redis is optional; without it listings are fetched from Sheets on
	// every chat turn.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	var listingSource repositories.ListingSource
	listingSource = sheetsadapter.NewListingAdapter(sheetsclient.NewClient(&cfg.Sheets))
	if cacheProvider != nil {
		listingSource = sheetsadapter.NewCachedSource(listingSource, cacheProvider, cfg.Sheets.CacheTTL)
		log.Info().Int("ttl_seconds", cfg.Sheets.CacheTTL).Msg("listing source wrapped with cache")
	} else {
		log.Warn().Msg("listing source running without cache")
	}

	var suggestIndex repositories.SuggestIndex
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize Typesense client, suggestions degrade to scan")
	} else {
		adapter := search.NewTypesenseAdapter(typesenseClient)
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to init Typesense schema")
		}
		suggestIndex = adapter
		log.Info().Msg("Typesense client initialized")
	}

	var locationProvider providers.LocationProvider
	switch cfg.Geolocation.Provider {
	case "ipapi":
		locationProvider = geolocation.NewIPProvider(cfg.Geolocation.BaseURL)
	default:
		locationProvider = geolocation.NewMockLocationProvider()
	}

	filterService := services.NewFilterService(cfg.Chat.NearbyRadiusKm, locationProvider.Distance)
	chatService := services.NewChatService(listingSource, locationProvider, filterService, cfg.Chat.PageSize, metrics)
	listingService := services.NewListingService(listingSource, suggestIndex)
	leadService := services.NewLeadService(database.NewLeadAdapter(pgClient))

	router := routes.NewRouter(
		handlers.NewChatHandler(chatService),
		handlers.NewListingHandler(listingService),
		handlers.NewLeadHandler(leadService),
		metrics,
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
