package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "wanderlens/internal/adapters/http_server"
	"wanderlens/internal/adapters/memcache"
	"wanderlens/internal/adapters/observability"
	redisad "wanderlens/internal/adapters/redis"
	"wanderlens/internal/app"
	"wanderlens/internal/domain"
	"wanderlens/internal/fixtures"
	"wanderlens/internal/shared"
	mysqlrepo "wanderlens/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// catalog
	var catalog domain.Catalog = fixtures.New()
	if cfg.Catalog == shared.CatalogMySQL {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		catalog = mysqlrepo.New(db)
	}

	// cache: redis when configured, in-process otherwise
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		cache = rc
	} else {
		cache = memcache.New(5 * time.Minute)
	}

	svc := app.NewPlanService(catalog, cache, app.Options{
		CacheTTL:      cfg.CacheTTL,
		Latency:       cfg.Latency,
		PublicBaseURL: cfg.PublicBaseURL,
	})

	// http
	srv := server.New(server.Options{
		CORSOrigins:  cfg.CORSOrigins,
		RateLimitRPS: cfg.RateLimitRPS,
		TrustProxy:   cfg.TrustProxy,
	})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("catalog", cfg.Catalog).
		Bool("redis", cfg.RedisAddr != "").
		Dur("plan_latency", cfg.Latency.Plan).
		Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
