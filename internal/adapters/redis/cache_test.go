package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "wanderlens/internal/adapters/redis"
	"wanderlens/internal/domain"
)

func TestCache_SetGetDelTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	var got domain.PlanResult
	ok, err := c.Get(ctx, "plan:tokyo:x", &got)
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	in := domain.PlanResult{Destination: domain.Tokyo, Bundles: []domain.Bundle{{ID: "t1", PricePP: 1850}}}
	if err := c.Set(ctx, "plan:tokyo:x", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("wanderlens:plan:tokyo:x") {
		t.Fatalf("expected namespaced key in redis, keys=%v", mr.Keys())
	}

	ok, err = c.Get(ctx, "plan:tokyo:x", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Destination != domain.Tokyo || len(got.Bundles) != 1 || got.Bundles[0].ID != "t1" {
		t.Fatalf("unexpected value: %+v", got)
	}

	mr.FastForward(61 * time.Second)
	if ok, _ := c.Get(ctx, "plan:tokyo:x", &got); ok {
		t.Fatalf("expected key to expire")
	}

	_ = c.Set(ctx, "k", "v", 60)
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if mr.Exists("wanderlens:k") {
		t.Fatalf("expected key deleted")
	}
}

func TestCache_GetErrorWhenServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	mr.Close()

	var dst string
	if _, err := c.Get(context.Background(), "k", &dst); err == nil {
		t.Fatalf("expected error with redis down")
	}
}
