package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlens/internal/domain"
	"wanderlens/internal/fixtures"
	"wanderlens/internal/planner"
)

func ids(bs []domain.Bundle) []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.ID)
	}
	return out
}

func bundle(id string, price int, access []string, badges []string, eco string) domain.Bundle {
	return domain.Bundle{
		ID:      id,
		PricePP: price,
		Stay:    domain.Stay{Name: id + " stay", Accessibility: access},
		Badges:  badges,
		EcoNote: eco,
	}
}

// ---- Select ---------------------------------------------------------------

func TestSelect(t *testing.T) {
	poi := func(name string) domain.AnalysisResult {
		return domain.AnalysisResult{POIs: []domain.POI{{Name: name}}}
	}
	tests := []struct {
		name string
		in   domain.AnalysisResult
		want domain.Destination
	}{
		{"tokyo poi", poi("Shibuya Crossing, Tokyo"), domain.Tokyo},
		{"japan poi", poi("Mount Fuji, JAPAN"), domain.Tokyo},
		{"bali poi", poi("Kuta Beach, Bali"), domain.Bali},
		{"ubud poi", poi("Ubud Rice Terraces"), domain.Bali},
		{"unmatched poi", poi("Oia, Santorini"), domain.Santorini},
		{"no pois", domain.AnalysisResult{}, domain.Santorini},
		{"code overrides poi", domain.AnalysisResult{
			POIs:        []domain.POI{{Name: "Tokyo Disneyland, Anaheim"}},
			Destination: domain.Bali,
		}, domain.Bali},
		{"unknown code falls back to poi", domain.AnalysisResult{
			POIs:        []domain.POI{{Name: "Tokyo Tower"}},
			Destination: "atlantis",
		}, domain.Tokyo},
		{"only primary poi counts", domain.AnalysisResult{POIs: []domain.POI{
			{Name: "Acropolis"}, {Name: "Tokyo Tower"},
		}}, domain.Santorini},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planner.Select(tt.in))
		})
	}
}

// ---- Filter ---------------------------------------------------------------

func TestFilter_NoConstraintsKeepsAll(t *testing.T) {
	in := fixtures.Group(domain.Santorini)
	out, relaxed := planner.Filter(in, domain.PlanningConstraints{})
	assert.False(t, relaxed)
	assert.Equal(t, []string{"b1", "b2", "b3"}, ids(out))
}

func TestFilter_BudgetBands(t *testing.T) {
	in := []domain.Bundle{
		bundle("a", 900, nil, nil, ""),
		bundle("b", 1200, nil, nil, ""),
		bundle("c", 2000, nil, nil, ""),
		bundle("d", 2400, nil, nil, ""),
	}
	out, _ := planner.Filter(in, domain.PlanningConstraints{Budget: domain.BudgetTierBudget})
	assert.Equal(t, []string{"a"}, ids(out))
	for _, b := range out {
		assert.Less(t, b.PricePP, 1200)
	}

	out, _ = planner.Filter(in, domain.PlanningConstraints{Budget: domain.BudgetTierMidRange})
	assert.Equal(t, []string{"b", "c"}, ids(out))

	out, _ = planner.Filter(in, domain.PlanningConstraints{Budget: domain.BudgetTierLuxury})
	assert.Equal(t, []string{"d"}, ids(out))
}

func TestFilter_Accessibility(t *testing.T) {
	in := []domain.Bundle{
		bundle("a", 1000, nil, nil, ""),
		bundle("b", 1000, []string{"elevator"}, nil, ""),
		bundle("c", 1000, []string{}, nil, ""),
	}
	out, relaxed := planner.Filter(in, domain.PlanningConstraints{Accessibility: true})
	require.False(t, relaxed)
	assert.Equal(t, []string{"b"}, ids(out))
	for _, b := range out {
		assert.NotEmpty(t, b.Stay.Accessibility)
	}
}

func TestFilter_EcoBadgeOrNote(t *testing.T) {
	in := []domain.Bundle{
		bundle("badge", 1000, nil, []string{"Eco"}, ""),
		bundle("note", 1000, nil, nil, "rail alternative"),
		bundle("lookalike", 1000, nil, []string{"Eco-Friendly"}, ""),
		bundle("plain", 1000, nil, []string{"Budget"}, ""),
	}
	out, _ := planner.Filter(in, domain.PlanningConstraints{EcoFriendly: true})
	assert.Equal(t, []string{"badge", "note"}, ids(out))
}

func TestFilter_ConjunctiveAndOrderFree(t *testing.T) {
	in := []domain.Bundle{
		bundle("a", 900, []string{"ramp"}, []string{"Eco"}, ""),
		bundle("b", 900, nil, []string{"Eco"}, ""),
		bundle("c", 1500, []string{"ramp"}, []string{"Eco"}, ""),
	}
	c := domain.PlanningConstraints{Budget: domain.BudgetTierBudget, Accessibility: true, EcoFriendly: true}
	out, relaxed := planner.Filter(in, c)
	assert.False(t, relaxed)
	assert.Equal(t, []string{"a"}, ids(out))
}

func TestFilter_LuxuryFallsBackToFirstOriginal(t *testing.T) {
	in := fixtures.Group(domain.Santorini) // nothing above 2000
	out, relaxed := planner.Filter(in, domain.PlanningConstraints{Budget: domain.BudgetTierLuxury})
	require.True(t, relaxed)
	require.Len(t, out, 1)
	assert.Equal(t, in[0], out[0])
}

func TestFilter_NeverEmptyForNonEmptyInput(t *testing.T) {
	groups := [][]domain.Bundle{
		fixtures.Group(domain.Santorini),
		fixtures.Group(domain.Tokyo),
		fixtures.Group(domain.Bali),
	}
	tiers := []domain.BudgetTier{"", domain.BudgetTierBudget, domain.BudgetTierMidRange, domain.BudgetTierLuxury}
	for _, g := range groups {
		for _, tier := range tiers {
			for _, acc := range []bool{false, true} {
				for _, eco := range []bool{false, true} {
					c := domain.PlanningConstraints{Budget: tier, Accessibility: acc, EcoFriendly: eco}
					out, _ := planner.Filter(g, c)
					assert.NotEmpty(t, out, "group %s constraints %+v", g[0].ID, c)
				}
			}
		}
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	out, relaxed := planner.Filter(nil, domain.PlanningConstraints{Budget: domain.BudgetTierLuxury})
	assert.False(t, relaxed)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	in := fixtures.Group(domain.Tokyo)
	out, _ := planner.Filter(in, domain.PlanningConstraints{})
	out[0].Badges[0] = "changed"
	assert.Equal(t, "Tech", in[0].Badges[0])
}

// ---- Alternatives & Refine ------------------------------------------------

func TestAlternative_IDAndTemplate(t *testing.T) {
	b, ok := planner.Alternative("b1", fixtures.ModeEco)
	require.True(t, ok)
	assert.Equal(t, "alt_eco_b1", b.ID)
	assert.True(t, b.HasBadge(domain.BadgeEco))

	_, ok = planner.Alternative("b1", "teleport")
	assert.False(t, ok)
}

func TestIntent(t *testing.T) {
	tests := map[string]fixtures.Mode{
		"Cheaper dupes":          fixtures.ModeCheaper,
		"Eco-first":              fixtures.ModeEco,
		"Accessible stays":       fixtures.ModeAccessible,
		"something LUXURIOUS":    fixtures.ModeLuxury,
		"cheaper and eco please": fixtures.ModeCheaper,
	}
	for msg, want := range tests {
		got, ok := planner.Intent(msg)
		assert.True(t, ok, msg)
		assert.Equal(t, want, got, msg)
	}
	_, ok := planner.Intent("Make it kid-friendly")
	assert.False(t, ok)
}

func TestRefine_PrependsOnceAndAnchorsOnBaseBundle(t *testing.T) {
	current := fixtures.Group(domain.Santorini)

	r := planner.Refine("Cheaper dupes", current)
	assert.Equal(t, "cheaper", r.Mode)
	assert.Equal(t, []string{"alt_cheaper_b1", "b1", "b2", "b3"}, ids(r.Bundles))

	r = planner.Refine("eco-first", r.Bundles)
	assert.Equal(t, []string{"alt_eco_b1", "alt_cheaper_b1", "b1", "b2", "b3"}, ids(r.Bundles))

	again := planner.Refine("cheaper again", r.Bundles)
	assert.Equal(t, ids(r.Bundles), ids(again.Bundles))
	assert.Contains(t, again.Reply, "already")
}

func TestRefine_NoIntentLeavesListUnchanged(t *testing.T) {
	current := fixtures.Group(domain.Bali)
	r := planner.Refine("make it kid-friendly", current)
	assert.Empty(t, r.Mode)
	assert.Equal(t, []string{"ba1"}, ids(r.Bundles))
	assert.NotEmpty(t, r.Reply)
}

func TestParseAlternativeID(t *testing.T) {
	id, m, ok := planner.ParseAlternativeID("alt_accessible_my_bundle")
	require.True(t, ok)
	assert.Equal(t, "my_bundle", id)
	assert.Equal(t, fixtures.ModeAccessible, m)

	for _, bad := range []string{"b1", "alt_", "alt_eco", "alt_eco_", "alt_teleport_b1"} {
		_, _, ok := planner.ParseAlternativeID(bad)
		assert.False(t, ok, bad)
	}
}
