package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ajaniguide/ajani/backend/internal/adapters/search"
	sheetsadapter "github.com/ajaniguide/ajani/backend/internal/adapters/sheets"
	"github.com/ajaniguide/ajani/backend/internal/application/services"
	sheetsclient "github.com/ajaniguide/ajani/backend/internal/infrastructure/clients/sheets"
	"github.com/ajaniguide/ajani/backend/internal/infrastructure/clients/typesense"
	"github.com/ajaniguide/ajani/backend/internal/infrastructure/observability"
	"github.com/ajaniguide/ajani/backend/pkg/config"
)

// indexer backfills the Typesense suggest collection from the listing sheet.
// Run once for a backfill, or with -interval for periodic reindexing.
func main() {
	var intervalFlag string
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger(cfg.OTEL.ServiceName+"-indexer", cfg.Environment)

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Str("interval", intervalValue).Err(err).Msg("invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Typesense client")
	}

	source := sheetsadapter.NewListingAdapter(sheetsclient.NewClient(&cfg.Sheets))
	listingService := services.NewListingService(source, search.NewTypesenseAdapter(typesenseClient))

	for {
		indexed, err := listingService.RefreshIndex(ctx)
		if err != nil {
			log.Error().Err(err).Msg("reindex failed")
		} else {
			log.Info().Int("indexed", indexed).Msg("reindex complete")
		}

		if interval <= 0 {
			break
		}

		log.Info().Dur("interval", interval).Msg("next run scheduled")
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
