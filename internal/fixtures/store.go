package fixtures

import (
	"context"
	"fmt"

	"wanderlens/internal/domain"
)

// Store serves the compiled-in catalog. It implements domain.Catalog and
// never fails except for unknown ids.
type Store struct{}

func New() *Store { return &Store{} }

var _ domain.Catalog = (*Store)(nil)

func (s *Store) Group(_ context.Context, d domain.Destination) ([]domain.Bundle, error) {
	g, ok := groups[d]
	if !ok {
		return nil, fmt.Errorf("destination %q: %w", d, domain.ErrNotFound)
	}
	return domain.CloneAll(g), nil
}

func (s *Store) Bundle(_ context.Context, id string) (domain.Bundle, error) {
	for _, d := range domain.Destinations {
		for _, b := range groups[d] {
			if b.ID == id {
				return b.Clone(), nil
			}
		}
	}
	return domain.Bundle{}, fmt.Errorf("bundle %q: %w", id, domain.ErrNotFound)
}

// All returns every bundle, grouped in destination order.
func (s *Store) All(_ context.Context) ([]domain.Bundle, error) {
	var out []domain.Bundle
	for _, d := range domain.Destinations {
		out = append(out, domain.CloneAll(groups[d])...)
	}
	return out, nil
}

// Analysis returns the canned analysis for a destination; unknown
// destinations get Santorini.
func Analysis(d domain.Destination) domain.AnalysisResult {
	a, ok := analyses[d]
	if !ok {
		a = analyses[domain.Santorini]
	}
	a.POIs = append([]domain.POI(nil), a.POIs...)
	a.Activities = append([]string(nil), a.Activities...)
	a.Vibe = append([]string(nil), a.Vibe...)
	return a
}

// Alternative returns a copy of the template for mode, without an id.
func Alternative(m Mode) (domain.Bundle, bool) {
	b, ok := alternatives[m]
	if !ok {
		return domain.Bundle{}, false
	}
	return b.Clone(), true
}

// Group is the context-free form of Store.Group for callers outside a request.
func Group(d domain.Destination) []domain.Bundle {
	return domain.CloneAll(groups[d])
}
