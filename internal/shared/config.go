package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	CatalogFixtures = "fixtures"
	CatalogMySQL    = "mysql"
)

type Config struct {
	AppEnv        string
	LogLevel      string
	HTTPAddr      string
	MetricsAddr   string
	PublicBaseURL string
	Catalog       string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	CacheTTL      time.Duration
	CORSOrigins   []string
	RateLimitRPS  int
	TrustProxy    bool
	Latency       Latency
	FeedBase      string
	FeedKey       string
	FeedRPS       int
	Workers       int
}

// Latency holds the artificial delays that stand in for the analysis,
// planning, chat and booking backends. All zero unless SIMULATE_LATENCY is set.
type Latency struct {
	Analyze time.Duration
	Plan    time.Duration
	Refine  time.Duration
	Book    time.Duration
}

// DemoLatency matches the pacing of the original front-end demo.
var DemoLatency = Latency{
	Analyze: 1200 * time.Millisecond,
	Plan:    800 * time.Millisecond,
	Refine:  600 * time.Millisecond,
	Book:    400 * time.Millisecond,
}

// Load reads the environment, seeding it from .env when one is present.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric setting")
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		LogLevel:      env("LOG_LEVEL", "info"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ""),
		PublicBaseURL: strings.TrimRight(env("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		Catalog:       strings.ToLower(env("CATALOG", CatalogFixtures)),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/wanderlens?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		CORSOrigins:   splitCSV(env("CORS_ORIGINS", "http://localhost:3000")),
		RateLimitRPS:  atoi("RATE_LIMIT_RPS", 20),
		FeedBase:      strings.TrimRight(env("FEED_BASE_URL", ""), "/"),
		FeedKey:       env("FEED_API_KEY", ""),
		FeedRPS:       atoi("FEED_RPS", 5),
		Workers:       atoi("INGEST_WORKERS", 3),
	}
	if b, err := strconv.ParseBool(env("SIMULATE_LATENCY", "false")); err == nil && b {
		c.Latency = DemoLatency
	}
	c.TrustProxy, _ = strconv.ParseBool(env("TRUST_PROXY", "false"))
	if c.Catalog != CatalogFixtures && c.Catalog != CatalogMySQL {
		log.Warn().Str("catalog", c.Catalog).Msg("unknown CATALOG, using fixtures")
		c.Catalog = CatalogFixtures
	}
	if c.FeedBase != "" && c.FeedKey == "" {
		log.Warn().Msg("FEED_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
