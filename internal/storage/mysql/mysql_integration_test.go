//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/go-cmp/cmp"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/pressly/goose/v3"

	"wanderlens/internal/domain"
	"wanderlens/internal/fixtures"
	mysqlrepo "wanderlens/internal/storage/mysql"
	"wanderlens/migrations"
)

// startMySQL runs an isolated MySQL, applies the embedded migrations and
// returns a connection. Skips when Docker is unavailable.
func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=wanderlens",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/wanderlens?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	provider, err := goose.NewProvider(goose.DialectMySQL, db, migrations.FS)
	if err != nil {
		t.Fatalf("goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("goose up: %v", err)
	}
	return db
}

func TestRepo_MySQL_UpsertAndQuery(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// Arrange: load every fixture group in order.
	for _, d := range domain.Destinations {
		for i, b := range fixtures.Group(d) {
			if err := repo.UpsertBundle(ctx, d, i, b, []byte(`{}`)); err != nil {
				t.Fatalf("UpsertBundle %s: %v", b.ID, err)
			}
		}
	}

	// The catalog read back must equal the compiled-in one.
	for _, d := range domain.Destinations {
		got, err := repo.Group(ctx, d)
		if err != nil {
			t.Fatalf("Group %s: %v", d, err)
		}
		if diff := cmp.Diff(fixtures.Group(d), got); diff != "" {
			t.Fatalf("group %s mismatch (-want +got):\n%s", d, diff)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	want, _ := fixtures.New().All(ctx)
	if diff := cmp.Diff(want, all); diff != "" {
		t.Fatalf("all mismatch (-want +got):\n%s", diff)
	}

	b, err := repo.Bundle(ctx, "t2")
	if err != nil || b.PricePP != 1320 {
		t.Fatalf("Bundle t2: %+v, %v", b, err)
	}
	if _, err := repo.Bundle(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRepo_MySQL_PruneAndMisses(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	for i, b := range fixtures.Group(domain.Santorini) {
		if err := repo.UpsertBundle(ctx, domain.Santorini, i, b, nil); err != nil {
			t.Fatalf("UpsertBundle: %v", err)
		}
	}
	if err := repo.PruneGroup(ctx, domain.Santorini, []string{"b3", "b1"}); err != nil {
		t.Fatalf("PruneGroup: %v", err)
	}
	got, err := repo.Group(ctx, domain.Santorini)
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b3" {
		t.Fatalf("unexpected group after prune: %+v", got)
	}
	if err := repo.PruneGroup(ctx, domain.Santorini, nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error on empty keep, got %v", err)
	}

	if _, err := repo.Group(ctx, domain.Bali); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected empty group to be not found, got %v", err)
	}

	// A repeated miss only refreshes seen_at.
	for i := 0; i < 2; i++ {
		if err := repo.LogMiss(ctx, domain.Bali, 404, "group not found"); err != nil {
			t.Fatalf("LogMiss: %v", err)
		}
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ingest_misses WHERE destination = 'bali'`).Scan(&n); err != nil {
		t.Fatalf("count misses: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 miss row, got %d", n)
	}
}
