package planner

import "wanderlens/internal/domain"

type predicate func(domain.Bundle) bool

func predicates(c domain.PlanningConstraints) []predicate {
	var ps []predicate
	if c.Budget != domain.BudgetTierNone {
		tier := c.Budget
		ps = append(ps, func(b domain.Bundle) bool { return tier.Contains(b.PricePP) })
	}
	if c.Accessibility {
		ps = append(ps, func(b domain.Bundle) bool { return len(b.Stay.Accessibility) > 0 })
	}
	if c.EcoFriendly {
		ps = append(ps, func(b domain.Bundle) bool { return b.HasBadge(domain.BadgeEco) || b.EcoNote != "" })
	}
	return ps
}

// Filter keeps the bundles that satisfy every active constraint. When that
// leaves nothing it returns the first original bundle alone and reports
// relaxed=true. The result never aliases the input.
func Filter(bundles []domain.Bundle, c domain.PlanningConstraints) (out []domain.Bundle, relaxed bool) {
	ps := predicates(c)
	out = make([]domain.Bundle, 0, len(bundles))
next:
	for _, b := range bundles {
		for _, keep := range ps {
			if !keep(b) {
				continue next
			}
		}
		out = append(out, b.Clone())
	}
	if len(out) == 0 && len(bundles) > 0 {
		return []domain.Bundle{bundles[0].Clone()}, true
	}
	return out, false
}
