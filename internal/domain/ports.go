package domain

import "context"

// Catalog is read access to the bundle groups.
type Catalog interface {
	// Group returns a destination's bundles in display order.
	Group(ctx context.Context, d Destination) ([]Bundle, error)
	Bundle(ctx context.Context, id string) (Bundle, error)
	All(ctx context.Context) ([]Bundle, error)
}

// CatalogWriter is implemented by catalogs the ingestor can load.
type CatalogWriter interface {
	UpsertBundle(ctx context.Context, d Destination, position int, b Bundle, raw []byte) error
	PruneGroup(ctx context.Context, d Destination, keep []string) error
	LogMiss(ctx context.Context, d Destination, status int, reason string) error
}

// FeedClient fetches raw bundle payloads from a remote content feed.
type FeedClient interface {
	GetGroup(ctx context.Context, d Destination) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models

type PlanResult struct {
	Destination Destination `json:"destination"`
	Bundles     []Bundle    `json:"bundles"`
	// Relaxed is true when the constraints matched nothing and the first
	// bundle of the group was returned instead.
	Relaxed bool `json:"relaxed"`
}

type RefineResult struct {
	Bundles []Bundle `json:"bundles"`
	Mode    string   `json:"mode,omitempty"`
	Reply   string   `json:"reply"`
}

type ShareView struct {
	Bundle   Bundle `json:"bundle"`
	Path     string `json:"path"`
	URL      string `json:"url,omitempty"`
	Fallback bool   `json:"fallback"`
}

type BookingView struct {
	Booking  Booking `json:"booking"`
	Bundle   Bundle  `json:"bundle"`
	Fallback bool    `json:"fallback"`
}
