package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"wanderlens/internal/adapters/observability"
	"wanderlens/internal/domain"
	"wanderlens/internal/planner"
	"wanderlens/internal/shared"
)

type Options struct {
	CacheTTL      time.Duration
	Latency       shared.Latency
	PublicBaseURL string
}

// PlanService answers every request-scoped operation of the API and CLI.
type PlanService struct {
	catalog domain.Catalog
	cache   domain.Cache
	opts    Options
	flight  singleflight.Group

	now     func() time.Time
	mediaID func() string
}

func NewPlanService(c domain.Catalog, cache domain.Cache, opts Options) *PlanService {
	return &PlanService{
		catalog: c,
		cache:   cache,
		opts:    opts,
		now:     time.Now,
		mediaID: func() string { return "media_" + uuid.NewString() },
	}
}

// PlanKey is the cache key of a plan. Only the constraints that narrow the
// list take part, so the key space per destination is small and enumerable.
func PlanKey(d domain.Destination, c domain.PlanningConstraints) string {
	budget := string(c.Budget)
	if budget == "" {
		budget = "any"
	}
	return fmt.Sprintf("plan:%s:%s:%s:%s", d, budget,
		strconv.FormatBool(c.Accessibility), strconv.FormatBool(c.EcoFriendly))
}

// PlanKeys lists every PlanKey of a destination.
func PlanKeys(d domain.Destination) []string {
	tiers := []domain.BudgetTier{domain.BudgetTierNone, domain.BudgetTierBudget, domain.BudgetTierMidRange, domain.BudgetTierLuxury}
	keys := make([]string, 0, len(tiers)*4)
	for _, t := range tiers {
		for _, acc := range []bool{false, true} {
			for _, eco := range []bool{false, true} {
				keys = append(keys, PlanKey(d, domain.PlanningConstraints{Budget: t, Accessibility: acc, EcoFriendly: eco}))
			}
		}
	}
	return keys
}

func (s *PlanService) Plan(ctx context.Context, a domain.AnalysisResult, c domain.PlanningConstraints) (domain.PlanResult, error) {
	if err := c.Validate(); err != nil {
		return domain.PlanResult{}, err
	}
	if err := wait(ctx, s.opts.Latency.Plan); err != nil {
		return domain.PlanResult{}, err
	}

	d := planner.Select(a)
	key := PlanKey(d, c)

	var res domain.PlanResult
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &res); ok {
			return res, nil
		}
	}

	// The flight outlives any single caller; each caller waits on its own ctx.
	fctx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(key, func() (any, error) {
		group, err := s.catalog.Group(fctx, d)
		if err != nil {
			return domain.PlanResult{}, catalogErr(err)
		}
		bundles, relaxed := planner.Filter(group, c)
		out := domain.PlanResult{Destination: d, Bundles: bundles, Relaxed: relaxed}
		if s.cache != nil {
			if err := s.cache.Set(fctx, key, out, int(s.opts.CacheTTL.Seconds())); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("plan cache set failed")
			}
		}
		observability.ObservePlan(string(d), relaxed)
		if relaxed {
			log.Info().Str("destination", string(d)).Str("budget", string(c.Budget)).
				Bool("accessibility", c.Accessibility).Bool("eco", c.EcoFriendly).
				Msg("no bundle matched, returning first of group")
		}
		return out, nil
	})

	var v any
	select {
	case <-ctx.Done():
		return domain.PlanResult{}, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return domain.PlanResult{}, r.Err
		}
		v = r.Val
	}

	// callers sharing a flight must not share backing arrays
	res = v.(domain.PlanResult)
	res.Bundles = domain.CloneAll(res.Bundles)
	return res, nil
}

// Share resolves a bundle for the share page. Unknown ids get the first
// Santorini bundle, flagged as a fallback.
func (s *PlanService) Share(ctx context.Context, id string) (domain.ShareView, error) {
	b, fallback, err := s.bundleOrDefault(ctx, id, "share")
	if err != nil {
		return domain.ShareView{}, err
	}
	path := domain.SharePath(b.ID)
	return domain.ShareView{Bundle: b, Path: path, URL: s.opts.PublicBaseURL + path, Fallback: fallback}, nil
}

// ShareIDs lists every catalog bundle id, in catalog order.
func (s *PlanService) ShareIDs(ctx context.Context) ([]string, error) {
	all, err := s.catalog.All(ctx)
	if err != nil {
		return nil, catalogErr(err)
	}
	ids := make([]string, len(all))
	for i, b := range all {
		ids[i] = b.ID
	}
	return ids, nil
}

// ResolveBooking turns a booking reference back into its booking and bundle.
func (s *PlanService) ResolveBooking(ctx context.Context, ref string) (domain.BookingView, error) {
	id, at, err := domain.ParseBookingRef(ref)
	if err != nil {
		return domain.BookingView{}, err
	}
	b, fallback, err := s.bundleOrDefault(ctx, id, "booking")
	if err != nil {
		return domain.BookingView{}, err
	}
	return domain.BookingView{Booking: domain.NewBooking(id, at), Bundle: b, Fallback: fallback}, nil
}

// Alternative builds the alternative of mode for an existing bundle.
func (s *PlanService) Alternative(ctx context.Context, bundleID, mode string) (domain.Bundle, error) {
	m, ok := parseMode(mode)
	if !ok {
		return domain.Bundle{}, fmt.Errorf("%w: unknown mode %q", domain.ErrValidation, mode)
	}
	if _, err := s.lookup(ctx, bundleID); err != nil {
		return domain.Bundle{}, err
	}
	alt, _ := planner.Alternative(bundleID, m)
	return alt, nil
}

// lookup finds a catalog bundle, or rebuilds an alternative from its id.
func (s *PlanService) lookup(ctx context.Context, id string) (domain.Bundle, error) {
	b, err := s.catalog.Bundle(ctx, id)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Bundle{}, catalogErr(err)
	}
	if base, m, ok := planner.ParseAlternativeID(id); ok {
		if _, berr := s.catalog.Bundle(ctx, base); berr == nil {
			alt, _ := planner.Alternative(base, m)
			return alt, nil
		}
	}
	return domain.Bundle{}, fmt.Errorf("bundle %q: %w", id, domain.ErrNotFound)
}

func (s *PlanService) bundleOrDefault(ctx context.Context, id, kind string) (domain.Bundle, bool, error) {
	b, err := s.lookup(ctx, id)
	if err == nil {
		return b, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Bundle{}, false, err
	}
	group, gerr := s.catalog.Group(ctx, domain.Santorini)
	if gerr != nil {
		return domain.Bundle{}, false, catalogErr(gerr)
	}
	if len(group) == 0 {
		return domain.Bundle{}, false, err
	}
	log.Warn().Str("bundle_id", id).Str("kind", kind).Msg("unknown bundle, serving default")
	observability.ObserveFallback(kind)
	return group[0], true, nil
}

// catalogErr keeps ErrNotFound and context errors and marks everything else
// as a backend outage.
func catalogErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: catalog: %v", domain.ErrUnavailable, err)
}

// wait stands in for a slow backend call. It returns early with the
// context error when ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
