package main

import (
	"context"
	"log"
	"time"

	"moviedb-backend/infrastructure/config"
	"moviedb-backend/infrastructure/di"
	"moviedb-backend/infrastructure/persistence/dynamodb"
	"moviedb-backend/seed"

	"go.uber.org/zap"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Logger.Sync()

	tables := dynamodb.SeedTables{
		Movies:  cfg.MoviesTable,
		Cast:    cfg.MovieCastTable,
		Reviews: cfg.ReviewsTable,
	}
	dataset := dynamodb.Dataset{
		Movies:  seed.Movies,
		Cast:    seed.Cast,
		Reviews: seed.Reviews,
	}

	if err := container.Seeder.Load(ctx, tables, dataset); err != nil {
		container.Logger.Fatal("seed run failed", zap.Error(err))
	}

	container.Logger.Info("seed run complete",
		zap.Int("movies", len(seed.Movies)),
		zap.Int("cast", len(seed.Cast)),
		zap.Int("reviews", len(seed.Reviews)),
	)
}
