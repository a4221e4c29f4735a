// Package planner picks and narrows bundle groups. Everything here is pure:
// no I/O, no errors, no shared state.
package planner

import (
	"strings"

	"wanderlens/internal/domain"
)

// keywords are checked in order against the lower-cased primary POI name.
var keywords = []struct {
	dest  domain.Destination
	terms []string
}{
	{domain.Tokyo, []string{"tokyo", "japan"}},
	{domain.Bali, []string{"bali", "ubud"}},
}

// Select maps an analysis to a bundle group. An explicit destination code
// wins; otherwise the primary POI name is matched by substring. Anything
// else lands on Santorini.
func Select(a domain.AnalysisResult) domain.Destination {
	if d, ok := domain.ParseDestination(string(a.Destination)); ok {
		return d
	}
	poi, ok := a.PrimaryPOI()
	if !ok {
		return domain.Santorini
	}
	name := strings.ToLower(poi.Name)
	for _, k := range keywords {
		for _, term := range k.terms {
			if strings.Contains(name, term) {
				return k.dest
			}
		}
	}
	return domain.Santorini
}
