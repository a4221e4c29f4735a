package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"wanderlens/internal/domain"
	"wanderlens/internal/fixtures"
)

// IngestionService loads bundle groups into a writable catalog, either from
// a remote feed or, when feed is nil, from the compiled-in fixtures.
type IngestionService struct {
	feed  domain.FeedClient
	repo  domain.CatalogWriter
	cache domain.Cache
}

func NewIngestionService(f domain.FeedClient, r domain.CatalogWriter, cache domain.Cache) *IngestionService {
	return &IngestionService{feed: f, repo: r, cache: cache}
}

type sourced struct {
	b   domain.Bundle
	raw []byte
}

// IngestGroup replaces one destination's group and returns how many
// bundles were written. Feed misses (404/401/403) are logged and skipped.
func (s *IngestionService) IngestGroup(ctx context.Context, d domain.Destination) (int, error) {
	items, err := s.load(ctx, d)
	if err != nil {
		status, reason := missStatus(err)
		if status == 0 {
			// network, 5xx, bad payloads: the caller decides
			return 0, err
		}
		log.Warn().Err(err).Str("destination", string(d)).Int("status", status).Msg("feed miss")
		if lerr := s.repo.LogMiss(ctx, d, status, reason); lerr != nil {
			return 0, fmt.Errorf("log miss %s: %w", d, lerr)
		}
		return 0, nil
	}

	keep := make([]string, 0, len(items))
	for i, it := range items {
		if err := s.repo.UpsertBundle(ctx, d, i, it.b, it.raw); err != nil {
			return len(keep), fmt.Errorf("upsert bundle %s: %w", it.b.ID, err)
		}
		keep = append(keep, it.b.ID)
	}

	// An empty feed answer must not wipe the group.
	if len(keep) > 0 {
		if err := s.repo.PruneGroup(ctx, d, keep); err != nil {
			return len(keep), fmt.Errorf("prune %s: %w", d, err)
		}
	}

	if s.cache != nil {
		s.invalidatePlans(ctx, d)
	}
	return len(keep), nil
}

func (s *IngestionService) load(ctx context.Context, d domain.Destination) ([]sourced, error) {
	if s.feed == nil {
		group := fixtures.Group(d)
		out := make([]sourced, 0, len(group))
		for _, b := range group {
			raw, err := json.Marshal(b)
			if err != nil {
				return nil, err
			}
			out = append(out, sourced{b: b, raw: raw})
		}
		return out, nil
	}

	payloads, err := s.feed.GetGroup(ctx, d)
	if err != nil {
		return nil, err
	}
	out := make([]sourced, 0, len(payloads))
	seen := make(map[string]struct{}, len(payloads))
	for i, p := range payloads {
		b, raw, err := mapBundle(p)
		if err != nil {
			log.Warn().Err(err).Str("destination", string(d)).Int("index", i).Msg("skipping feed bundle")
			if lerr := s.repo.LogMiss(ctx, d, 422, fmt.Sprintf("bundle[%d]: %v", i, err)); lerr != nil {
				return nil, fmt.Errorf("log miss %s: %w", d, lerr)
			}
			continue
		}
		if _, dup := seen[b.ID]; dup {
			log.Warn().Str("destination", string(d)).Str("bundle_id", b.ID).Msg("duplicate feed bundle")
			continue
		}
		seen[b.ID] = struct{}{}
		out = append(out, sourced{b: b, raw: raw})
	}
	return out, nil
}

// missStatus maps the feed answers that mean "nothing to ingest" to the
// status recorded in the miss log. It returns 0 for every other error.
func missStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return 404, "group not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return 401, "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return 403, "forbidden"
	}
	return 0, ""
}

// invalidatePlans evicts every cached plan of the destination.
func (s *IngestionService) invalidatePlans(ctx context.Context, d domain.Destination) {
	for _, k := range PlanKeys(d) {
		_ = s.cache.Del(ctx, k)
	}
}
