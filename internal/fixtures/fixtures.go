// Package fixtures holds the compiled-in demo catalog: bundle groups per
// destination, canned analysis results and alternative templates.
//
// Nothing here may be mutated; accessors hand out deep copies.
package fixtures

import "wanderlens/internal/domain"

func ip(v int) *int { return &v }

func hrs(v float64) *float64 { return &v }

func act(name string) domain.Activity { return domain.Activity{Name: name} }

var analyses = map[domain.Destination]domain.AnalysisResult{
	domain.Santorini: {
		POIs:        []domain.POI{{Name: "Oia, Santorini", Lat: 36.461, Lng: 25.376, Confidence: 0.91}},
		Activities:  []string{"sunset", "sailing", "photo-walk"},
		Season:      "late-summer",
		Vibe:        []string{"sunset", "coastal", "white-blue domes"},
		Confidence:  0.91,
		MediaID:     "media_santorini_001",
		Destination: domain.Santorini,
	},
	domain.Tokyo: {
		POIs: []domain.POI{
			{Name: "Shibuya Crossing, Tokyo", Lat: 35.6598, Lng: 139.7006, Confidence: 0.89},
			{Name: "Senso-ji Temple, Asakusa", Lat: 35.7148, Lng: 139.7967, Confidence: 0.85},
		},
		Activities:  []string{"temple-visit", "street-food", "shopping", "cherry-blossom"},
		Season:      "spring",
		Vibe:        []string{"urban", "traditional", "neon-lights", "cherry-blossoms"},
		Confidence:  0.87,
		MediaID:     "media_tokyo_002",
		Destination: domain.Tokyo,
	},
	domain.Bali: {
		POIs: []domain.POI{
			{Name: "Ubud Rice Terraces", Lat: -8.4095, Lng: 115.1889, Confidence: 0.93},
			{Name: "Tanah Lot Temple", Lat: -8.6212, Lng: 115.0869, Confidence: 0.88},
		},
		Activities:  []string{"yoga", "temple-visit", "rice-terrace", "spa", "volcano-hike"},
		Season:      "dry-season",
		Vibe:        []string{"tropical", "spiritual", "rice-terraces", "temple-culture"},
		Confidence:  0.90,
		MediaID:     "media_bali_003",
		Destination: domain.Bali,
	},
}

var groups = map[domain.Destination][]domain.Bundle{
	domain.Santorini: {
		{
			ID:      "b1",
			Title:   "Classic Oia Sunset",
			PricePP: 1240,
			Dates:   domain.DateRange{Start: "2025-10-08", End: "2025-10-11"},
			Flight:  domain.Flight{From: "JFK", To: "JTR", Stops: 1, Price: 720, CO2Kg: ip(410), Carrier: "Aegean"},
			Stay: domain.Stay{Name: "Astra Cave Suites", Rating: 4.7, Accessibility: []string{"step-free access"},
				PricePerNight: ip(210), Nights: ip(3)},
			Activities: []domain.Activity{act("Caldera Sail"), act("Blue Domes Photo Walk")},
			EcoNote:    "Rail+ferry alt reduces CO₂ by ~38%, adds 6h",
			SurgeNote:  "Nearby holiday dates +15%",
			Badges:     []string{"Eco", "Accessible"},
		},
		{
			ID:      "b2",
			Title:   "Relaxed Caldera Escape",
			PricePP: 980,
			Dates:   domain.DateRange{Start: "2025-10-15", End: "2025-10-18"},
			Flight:  domain.Flight{From: "JFK", To: "JTR", Stops: 1, Price: 650, CO2Kg: ip(395), Carrier: "SkyExpress"},
			Stay: domain.Stay{Name: "Cave Serenity Inn", Rating: 4.5, Accessibility: []string{"quiet zones"},
				PricePerNight: ip(140), Nights: ip(3)},
			Activities: []domain.Activity{act("Akrotiri Highlights"), act("Sunset Lookouts")},
			VisaNote:   "US passport: visa-free ≤90 days",
			Badges:     []string{"Budget"},
		},
		{
			ID:      "b3",
			Title:   "Premium Cliff Views",
			PricePP: 1680,
			Dates:   domain.DateRange{Start: "2025-09-30", End: "2025-10-03"},
			Flight:  domain.Flight{From: "JFK", To: "JTR", Stops: 1, Price: 860, CO2Kg: ip(430), Carrier: "Delta"},
			Stay: domain.Stay{Name: "Cliffside Boutique Hotel", Rating: 4.8, Accessibility: []string{"elevator"},
				PricePerNight: ip(260), Nights: ip(3)},
			Activities: []domain.Activity{act("Private Sunset Sail"), act("Wine Tasting")},
			SurgeNote:  "Peak weekend pricing",
			Badges:     []string{"Premium"},
		},
	},
	domain.Tokyo: {
		{
			ID:      "t1",
			Title:   "Tokyo Culture & Tech",
			PricePP: 1850,
			Dates:   domain.DateRange{Start: "2025-04-15", End: "2025-04-22"},
			Flight:  domain.Flight{From: "LAX", To: "NRT", Stops: 0, Price: 980, CO2Kg: ip(520), Carrier: "JAL"},
			Stay: domain.Stay{Name: "Shibuya Sky Hotel", Rating: 4.6, Accessibility: []string{"elevator", "braille"},
				PricePerNight: ip(180), Nights: ip(7)},
			Activities: []domain.Activity{
				{Name: "TeamLab Borderless", DurationHrs: hrs(3), Notes: "Digital art museum"},
				{Name: "Tsukiji Fish Market", DurationHrs: hrs(2), Notes: "Early morning visit"},
				{Name: "Meiji Shrine", DurationHrs: hrs(1.5), Notes: "Traditional ceremony"},
			},
			VisaNote: "US passport: visa-free ≤90 days",
			Badges:   []string{"Tech", "Cultural"},
		},
		{
			ID:      "t2",
			Title:   "Budget Tokyo Explorer",
			PricePP: 1320,
			Dates:   domain.DateRange{Start: "2025-05-01", End: "2025-05-08"},
			Flight:  domain.Flight{From: "LAX", To: "NRT", Stops: 1, Price: 750, CO2Kg: ip(480), Carrier: "ANA"},
			Stay: domain.Stay{Name: "Capsule Pod Shibuya", Rating: 4.2, Accessibility: []string{"compact design"},
				PricePerNight: ip(85), Nights: ip(7)},
			Activities: []domain.Activity{
				{Name: "Free Temple Tours", DurationHrs: hrs(2)},
				{Name: "Harajuku Street Walk", DurationHrs: hrs(3)},
				{Name: "Ueno Park Hanami", DurationHrs: hrs(2), Notes: "Cherry blossom viewing"},
			},
			EcoNote: "JR Pass reduces local transport CO₂",
			Badges:  []string{"Budget", "Eco-Friendly"},
		},
	},
	domain.Bali: {
		{
			ID:      "ba1",
			Title:   "Ubud Wellness Retreat",
			PricePP: 1450,
			Dates:   domain.DateRange{Start: "2025-07-20", End: "2025-07-27"},
			Flight:  domain.Flight{From: "SFO", To: "DPS", Stops: 1, Price: 820, CO2Kg: ip(650), Carrier: "Singapore Airlines"},
			Stay: domain.Stay{Name: "Bamboo Eco Lodge", Rating: 4.8, Accessibility: []string{"nature paths"},
				PricePerNight: ip(120), Nights: ip(7)},
			Activities: []domain.Activity{
				{Name: "Daily Yoga Sessions", DurationHrs: hrs(1.5), Notes: "Morning and evening"},
				{Name: "Rice Terrace Trek", DurationHrs: hrs(4), Notes: "Guided walk through Jatiluwih"},
				{Name: "Traditional Spa Treatment", DurationHrs: hrs(2), Notes: "Balinese massage"},
			},
			EcoNote:  "Solar-powered accommodation, local sourcing",
			VisaNote: "Visa on arrival $35 USD",
			Badges:   []string{"Wellness", "Eco", "Spiritual"},
		},
	},
}

// Mode selects an alternative template.
type Mode string

const (
	ModeCheaper    Mode = "cheaper"
	ModeEco        Mode = "eco"
	ModeLuxury     Mode = "luxury"
	ModeAccessible Mode = "accessible"
)

var Modes = []Mode{ModeCheaper, ModeEco, ModeLuxury, ModeAccessible}

func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Alternative templates. ID is filled in by the planner.
var alternatives = map[Mode]domain.Bundle{
	ModeCheaper: {
		Title:   "Budget-Friendly Alternative",
		PricePP: 890,
		Dates:   domain.DateRange{Start: "2025-10-12", End: "2025-10-15"},
		Flight:  domain.Flight{From: "JFK", To: "ATH", Stops: 1, Price: 520, CO2Kg: ip(380), Carrier: "Olympic Air"},
		Stay:    domain.Stay{Name: "Cozy Island Inn", Rating: 4.3, PricePerNight: ip(95), Nights: ip(3)},
		Activities: []domain.Activity{act("Self-Guided Walking Tour"), act("Local Beach Access")},
		Badges:     []string{"Budget", "Local"},
	},
	ModeEco: {
		Title:   "Eco-Conscious Alternative",
		PricePP: 1150,
		Dates:   domain.DateRange{Start: "2025-10-12", End: "2025-10-15"},
		Flight:  domain.Flight{From: "JFK", To: "ATH", Stops: 1, Price: 680, CO2Kg: ip(320), Carrier: "Olympic Air"},
		Stay:    domain.Stay{Name: "Green Retreat Hotel", Rating: 4.5, PricePerNight: ip(140), Nights: ip(3)},
		Activities: []domain.Activity{act("Sustainable Farm Visit"), act("Eco Beach Cleanup")},
		EcoNote:    "Carbon-neutral accommodation with solar power",
		Badges:     []string{"Eco", "Sustainable"},
	},
	ModeLuxury: {
		Title:   "Luxury Upgrade",
		PricePP: 2650,
		Dates:   domain.DateRange{Start: "2025-10-12", End: "2025-10-15"},
		Flight:  domain.Flight{From: "JFK", To: "ATH", Stops: 0, Price: 1480, CO2Kg: ip(610), Carrier: "Aegean"},
		Stay: domain.Stay{Name: "Canaves Oia Epitome", Rating: 4.9, Accessibility: []string{"elevator"},
			PricePerNight: ip(390), Nights: ip(3)},
		Activities: []domain.Activity{act("Private Catamaran Cruise"), act("Chef's Table Dinner")},
		Badges:     []string{"Luxury", "Premium"},
	},
	ModeAccessible: {
		Title:   "Accessible Stay Alternative",
		PricePP: 1190,
		Dates:   domain.DateRange{Start: "2025-10-12", End: "2025-10-15"},
		Flight:  domain.Flight{From: "JFK", To: "ATH", Stops: 1, Price: 640, CO2Kg: ip(380), Carrier: "Olympic Air"},
		Stay: domain.Stay{Name: "Harbor View Accessible Suites", Rating: 4.4,
			Accessibility: []string{"wheelchair access", "elevator"}, PricePerNight: ip(150), Nights: ip(3)},
		Activities: []domain.Activity{act("Step-Free Harbor Promenade"), act("Accessible Caldera Viewpoint")},
		Badges:     []string{"Accessible"},
	},
}
