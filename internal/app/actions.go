package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"wanderlens/internal/adapters/observability"
	"wanderlens/internal/domain"
	"wanderlens/internal/fixtures"
	"wanderlens/internal/planner"
)

// Analyze validates an upload and returns the canned analysis for the
// destination hint, Santorini when there is none.
func (s *PlanService) Analyze(ctx context.Context, req domain.AnalyzeRequest) (domain.AnalysisResult, error) {
	rawURL := strings.TrimSpace(req.URL)
	if len(req.Media) == 0 && rawURL == "" {
		return domain.AnalysisResult{}, fmt.Errorf("%w: provide at least one media file or a URL", domain.ErrValidation)
	}
	for _, m := range req.Media {
		if !strings.HasPrefix(m.Type, "image/") && !strings.HasPrefix(m.Type, "video/") {
			return domain.AnalysisResult{}, fmt.Errorf("%w: %q has unsupported type %q", domain.ErrValidation, m.Name, m.Type)
		}
	}
	if rawURL != "" {
		u, err := url.Parse(rawURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return domain.AnalysisResult{}, fmt.Errorf("%w: %q is not an http(s) URL", domain.ErrValidation, rawURL)
		}
	}

	d := domain.Santorini
	if req.Destination != "" {
		var ok bool
		if d, ok = domain.ParseDestination(req.Destination); !ok {
			return domain.AnalysisResult{}, fmt.Errorf("%w: unknown destination %q", domain.ErrValidation, req.Destination)
		}
	}

	if err := wait(ctx, s.opts.Latency.Analyze); err != nil {
		return domain.AnalysisResult{}, err
	}

	a := fixtures.Analysis(d)
	a.MediaID = s.mediaID()
	a.Destination = d
	log.Debug().Str("media_id", a.MediaID).Int("files", len(req.Media)).
		Str("destination", string(d)).Msg("analysis done")
	return a, nil
}

// Refine applies a chat message to the bundles currently on screen.
func (s *PlanService) Refine(ctx context.Context, message string, current []domain.Bundle) (domain.RefineResult, error) {
	if strings.TrimSpace(message) == "" {
		return domain.RefineResult{}, fmt.Errorf("%w: message is empty", domain.ErrValidation)
	}
	if len(current) == 0 {
		return domain.RefineResult{}, fmt.Errorf("%w: no bundles to refine", domain.ErrValidation)
	}
	if err := wait(ctx, s.opts.Latency.Refine); err != nil {
		return domain.RefineResult{}, err
	}
	res := planner.Refine(message, current)
	observability.ObserveRefine(res.Mode)
	return res, nil
}

// Book issues a booking reference for a known bundle or alternative.
func (s *PlanService) Book(ctx context.Context, bundleID string) (domain.Booking, error) {
	bundleID = strings.TrimSpace(bundleID)
	if bundleID == "" {
		return domain.Booking{}, fmt.Errorf("%w: bundleId is required", domain.ErrValidation)
	}
	if _, err := s.lookup(ctx, bundleID); err != nil {
		return domain.Booking{}, err
	}
	if err := wait(ctx, s.opts.Latency.Book); err != nil {
		return domain.Booking{}, err
	}
	b := domain.NewBooking(bundleID, s.now())
	observability.ObserveBooking()
	log.Info().Str("ref", b.Ref).Str("bundle_id", bundleID).Msg("booking created")
	return b, nil
}

func parseMode(s string) (fixtures.Mode, bool) {
	return fixtures.ParseMode(strings.ToLower(strings.TrimSpace(s)))
}
