// Command cleanup is the scheduled job that purges expired registration
// confirmations. It runs one batch delete and exits, making it suitable for
// cron or a serverless trigger; running it again with nothing newly expired
// is a no-op.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/service"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/infrastructure/config"
	mongodb "github.com/jstanislawczyk/compcar-car-service-sub000/internal/infrastructure/db/mongo"
	"github.com/jstanislawczyk/compcar-car-service-sub000/pkg/logger"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error().Err(err).Msg("mongo connection failed")
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	cleanup := service.NewCleanupService(mongodb.NewConfirmationRepository(db), log)
	deleted, err := cleanup.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("cleanup failed")
		os.Exit(1)
	}

	log.Info().Int64("deleted", deleted).Msg("cleanup finished")
}
