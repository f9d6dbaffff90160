package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/bhetiyo/backend/internal/api"
	"github.com/bhetiyo/backend/internal/claims"
	"github.com/bhetiyo/backend/internal/config"
	"github.com/bhetiyo/backend/internal/matching"
	"github.com/bhetiyo/backend/internal/storage"
	"github.com/bhetiyo/backend/internal/storage/memory"
	"github.com/bhetiyo/backend/internal/storage/postgres"
	"github.com/bhetiyo/backend/internal/text"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "lostfound-api")

	entry.Info("Starting Lost & Found API Service")

	// 1. Config
	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.Server.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// 2. Report store
	store, err := buildStore(cfg, entry)
	if err != nil {
		entry.Fatalf("Failed to initialize storage: %v", err)
	}

	// 3. Core services
	normalizer := text.NewNormalizer()
	matcher := matching.NewService(store, normalizer, entry,
		cfg.Matching.MinSimilarity, cfg.Matching.MinScorePercent)
	claimSvc := claims.NewService(store, entry)

	// 4. API Server
	server := api.NewServer(store, matcher, claimSvc, entry)

	entry.Infof("Lost & Found API ready on %s", cfg.Server.Addr)
	if err := server.Start(cfg.Server.Addr); err != nil {
		entry.Fatal(err)
	}
}

func buildStore(cfg *config.Config, log *logrus.Entry) (storage.ReportStore, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := pool.Ping(context.Background()); err != nil {
			return nil, err
		}
		log.Info("Using Postgres report store")
		return postgres.New(pool), nil
	default:
		log.Info("Using in-memory report store")
		return memory.New(), nil
	}
}
