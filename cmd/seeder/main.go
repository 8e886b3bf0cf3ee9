package main

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/semaphore"

	"million_properties/internal/adapters/observability"
	"million_properties/internal/app"
	"million_properties/internal/shared"
	mongorepo "million_properties/internal/storage/mongodb"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var records []app.SeedRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}
	log.Info().Int("records", len(records)).Msg("seed file parsed")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo.Connect failed")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := client.Ping(pingCtx, nil); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	cancel()
	log.Info().Msg("db ping ok")

	repo := mongorepo.New(client.Database(cfg.MongoDB))
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	seeder := app.NewSeedService(repo)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, rec := range records {
		rec := rec

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(rec app.SeedRecord) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := seeder.SeedProperty(ctx, rec); err != nil {
				log.Warn().Str("name", rec.Name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("name", rec.Name).Msg("seed ok")
		}(rec)
	}

	wg.Wait()
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	log.Info().Msg("seeding completed")
}
