package domain

// Bundle is a packaged travel offer: one flight leg, one stay and a list of
// activities sold under a single per-person price (whole USD).
type Bundle struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	PricePP    int        `json:"pricePP"`
	Dates      DateRange  `json:"dates"`
	Flight     Flight     `json:"flight"`
	Stay       Stay       `json:"stay"`
	Activities []Activity `json:"activities"`
	EcoNote    string     `json:"ecoNote,omitempty"`
	VisaNote   string     `json:"visaNote,omitempty"`
	SurgeNote  string     `json:"surgeNote,omitempty"`
	Badges     []string   `json:"badges,omitempty"`
}

// DateRange holds ISO dates (YYYY-MM-DD).
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Flight struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Stops   int    `json:"stops"`
	Price   int    `json:"price"`
	CO2Kg   *int   `json:"co2kg,omitempty"`
	Carrier string `json:"carrier,omitempty"`
}

type Stay struct {
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`
	Accessibility []string `json:"accessibility,omitempty"`
	PricePerNight *int     `json:"pricePerNight,omitempty"`
	Nights        *int     `json:"nights,omitempty"`
}

type Activity struct {
	Name        string   `json:"name"`
	DurationHrs *float64 `json:"durationHrs,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

const BadgeEco = "Eco"

// HasBadge reports an exact badge match.
func (b Bundle) HasBadge(badge string) bool {
	for _, x := range b.Badges {
		if x == badge {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can never mutate shared fixture data.
func (b Bundle) Clone() Bundle {
	out := b
	if b.Flight.CO2Kg != nil {
		v := *b.Flight.CO2Kg
		out.Flight.CO2Kg = &v
	}
	if b.Stay.Accessibility != nil {
		out.Stay.Accessibility = append([]string(nil), b.Stay.Accessibility...)
	}
	if b.Stay.PricePerNight != nil {
		v := *b.Stay.PricePerNight
		out.Stay.PricePerNight = &v
	}
	if b.Stay.Nights != nil {
		v := *b.Stay.Nights
		out.Stay.Nights = &v
	}
	if b.Activities != nil {
		out.Activities = make([]Activity, len(b.Activities))
		for i, a := range b.Activities {
			out.Activities[i] = a
			if a.DurationHrs != nil {
				v := *a.DurationHrs
				out.Activities[i].DurationHrs = &v
			}
		}
	}
	if b.Badges != nil {
		out.Badges = append([]string(nil), b.Badges...)
	}
	return out
}

// CloneAll deep-copies a bundle list. A nil input yields an empty, non-nil slice.
func CloneAll(in []Bundle) []Bundle {
	out := make([]Bundle, len(in))
	for i, b := range in {
		out[i] = b.Clone()
	}
	return out
}
