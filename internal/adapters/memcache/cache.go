// Package memcache is the in-process domain.Cache used when Redis is not
// configured. Values are stored as JSON so callers get the same copy
// semantics as with Redis.
package memcache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"wanderlens/internal/adapters/observability"
	"wanderlens/internal/domain"
)

type Cache struct{ c *gocache.Cache }

var _ domain.Cache = (*Cache)(nil)

// New creates a cache whose expired entries are swept every cleanup interval.
func New(cleanup time.Duration) *Cache {
	return &Cache{c: gocache.New(gocache.NoExpiration, cleanup)}
}

func (m *Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(v.([]byte), dst)
}

func (m *Cache) Set(_ context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveCache("memory", "set")
	m.c.Set(key, b, time.Duration(ttlSec)*time.Second)
	return nil
}

func (m *Cache) Del(_ context.Context, key string) error {
	observability.ObserveCache("memory", "del")
	m.c.Delete(key)
	return nil
}

// Len reports the number of live entries.
func (m *Cache) Len() int { return m.c.ItemCount() }
