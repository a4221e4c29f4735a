package app

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"wanderlens/internal/domain"
)

/********** alias registries (single source of truth) **********/

var bundleAliases = map[string][]string{
	"id":    {"id", "bundle_id", "bundleId", "slug"},
	"title": {"title", "name", "headline"},
	"start": {"dates.start", "start_date", "startDate", "departure"},
	"end":   {"dates.end", "end_date", "endDate", "return"},
	"eco":   {"ecoNote", "eco_note", "sustainability.note"},
	"visa":  {"visaNote", "visa_note", "visa.note"},
	"surge": {"surgeNote", "surge_note", "pricing.surge_note"},
}

var flightAliases = map[string][]string{
	"from":    {"flight.from", "flight.origin", "origin"},
	"to":      {"flight.to", "flight.destination", "destination_airport"},
	"carrier": {"flight.carrier", "flight.airline", "airline"},
}

var stayAliases = map[string][]string{
	"name": {"stay.name", "hotel.name", "accommodation.name"},
}

var activityAliases = map[string][]string{
	"name":  {"name", "title", "activity"},
	"notes": {"notes", "note", "description"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstAlias: first non-empty trimmed string for a named alias set.
func firstAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return s
		}
	}
	return ""
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// getIntFlexible: whole amount from several paths. Strings may carry a
// currency sign and thousands separators ("$1,450").
func getIntFlexible(m map[string]any, paths ...string) *int {
	for _, k := range paths {
		var f float64
		switch v := lookupAny(m, k).(type) {
		case float64:
			f = v
		case int:
			f = float64(v)
		case string:
			s := strings.NewReplacer("$", "", ",", "", " ", "").Replace(v)
			n, err := strconv.ParseFloat(s, 64)
			if err != nil {
				continue
			}
			f = n
		default:
			continue
		}
		x := int(math.Round(f))
		return &x
	}
	return nil
}

// firstSliceStrings: accept []any with either strings or {name/label/tag}.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		if raw, ok := lookupAny(m, k).([]any); ok {
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				switch t := it.(type) {
				case string:
					if t != "" {
						out = append(out, t)
					}
				case map[string]any:
					for _, f := range []string{"name", "label", "tag"} {
						if s, ok := t[f].(string); ok && s != "" {
							out = append(out, s)
							break
						}
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

/********** bundle mapper **********/

// mapBundle turns one feed object into a Bundle plus its raw JSON.
// A payload without an id or title is rejected.
func mapBundle(p map[string]any) (domain.Bundle, []byte, error) {
	b := domain.Bundle{
		ID:    firstAlias(p, bundleAliases, "id"),
		Title: firstAlias(p, bundleAliases, "title"),
	}
	if b.ID == "" {
		if n := getIntFlexible(p, "id", "bundle_id"); n != nil {
			b.ID = strconv.Itoa(*n)
		}
	}
	if b.ID == "" || b.Title == "" {
		return domain.Bundle{}, nil, fmt.Errorf("%w: feed bundle needs id and title", domain.ErrValidation)
	}

	b.PricePP = valueOr(getIntFlexible(p, "pricePP", "price_pp", "price.perPerson", "price.per_person", "price"), 0)
	b.Dates = domain.DateRange{
		Start: firstAlias(p, bundleAliases, "start"),
		End:   firstAlias(p, bundleAliases, "end"),
	}
	b.Flight = domain.Flight{
		From:    firstAlias(p, flightAliases, "from"),
		To:      firstAlias(p, flightAliases, "to"),
		Stops:   valueOr(getIntFlexible(p, "flight.stops", "flight.stop_count"), 0),
		Price:   valueOr(getIntFlexible(p, "flight.price", "flight.fare"), 0),
		CO2Kg:   getIntFlexible(p, "flight.co2kg", "flight.co2_kg", "flight.emissions.co2kg"),
		Carrier: firstAlias(p, flightAliases, "carrier"),
	}
	b.Stay = domain.Stay{
		Name:          firstAlias(p, stayAliases, "name"),
		Accessibility: firstSliceStrings(p, "stay.accessibility", "hotel.accessibility", "stay.accessibility_features"),
		PricePerNight: getIntFlexible(p, "stay.pricePerNight", "stay.price_per_night", "hotel.nightly_rate"),
		Nights:        getIntFlexible(p, "stay.nights", "hotel.nights"),
	}
	if f := getFloatFlexible(p, "stay.rating", "hotel.rating", "stay.stars"); f != nil {
		b.Stay.Rating = *f
	}
	b.Activities = mapActivities(p)
	b.EcoNote = firstAlias(p, bundleAliases, "eco")
	b.VisaNote = firstAlias(p, bundleAliases, "visa")
	b.SurgeNote = firstAlias(p, bundleAliases, "surge")
	b.Badges = firstSliceStrings(p, "badges", "tags", "labels")

	raw, err := json.Marshal(p)
	if err != nil {
		log.Error().Err(err).
			Str("context", "mapBundle").
			Str("bundle_id", b.ID).
			Msg("failed to marshal bundle to JSON")
	}
	return b, raw, nil
}

func mapActivities(p map[string]any) []domain.Activity {
	for _, path := range []string{"activities", "itinerary", "experiences"} {
		raw, ok := lookupAny(p, path).([]any)
		if !ok {
			continue
		}
		out := make([]domain.Activity, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, domain.Activity{Name: t})
				}
			case map[string]any:
				name := firstAlias(t, activityAliases, "name")
				if name == "" {
					continue
				}
				out = append(out, domain.Activity{
					Name:        name,
					DurationHrs: getFloatFlexible(t, "durationHrs", "duration_hrs", "hours"),
					Notes:       firstAlias(t, activityAliases, "notes"),
				})
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return []domain.Activity{}
}
