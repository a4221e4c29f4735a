package main

import (
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"wanderlens/internal/adapters/feed"
	"wanderlens/internal/adapters/observability"
	redisad "wanderlens/internal/adapters/redis"
	"wanderlens/internal/app"
	"wanderlens/internal/domain"
	"wanderlens/internal/shared"
	mysqlrepo "wanderlens/internal/storage/mysql"
	"wanderlens/migrations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	source := "fixtures"
	if cfg.FeedBase != "" {
		source = cfg.FeedBase
	}
	log.Info().
		Str("source", source).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	// 2) schema
	provider, err := goose.NewProvider(goose.DialectMySQL, db, migrations.FS)
	if err != nil {
		log.Fatal().Err(err).Msg("goose provider failed")
	}
	results, err := provider.Up(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	log.Info().Int("applied", len(results)).Msg("migrations ok")

	repo := mysqlrepo.New(db)

	var client domain.FeedClient
	if cfg.FeedBase != "" {
		fc, err := feed.New(cfg.FeedBase, cfg.FeedKey, cfg.FeedRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize feed client")
		}
		client = fc
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	ing := app.NewIngestionService(client, repo, cache)
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, d := range domain.Destinations {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("ingestion interrupted")
			break
		}

		wg.Add(1)
		go func(d domain.Destination) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := ing.IngestGroup(ctx, d)
			if err != nil {
				log.Warn().Str("destination", string(d)).Err(err).Msg("ingest failed")
				return
			}
			log.Info().Str("destination", string(d)).Int("bundles", n).Msg("ingest ok")
		}(d)
	}

	wg.Wait()
	log.Info().Msg("ingestion completed")
}
