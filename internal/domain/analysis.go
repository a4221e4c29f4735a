package domain

import "strings"

// Destination identifies one of the fixed bundle groups.
type Destination string

const (
	Santorini Destination = "santorini"
	Tokyo     Destination = "tokyo"
	Bali      Destination = "bali"
)

// Destinations lists every group in catalog order.
var Destinations = []Destination{Santorini, Tokyo, Bali}

// ParseDestination is case-insensitive; ok is false for unknown codes.
func ParseDestination(s string) (Destination, bool) {
	d := Destination(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Destinations {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// POI is a point of interest detected in the uploaded media.
type POI struct {
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Confidence float64 `json:"confidence"`
}

type AnalysisResult struct {
	POIs       []POI    `json:"pois"`
	Activities []string `json:"activities"`
	Season     string   `json:"season"`
	Vibe       []string `json:"vibe"`
	Confidence float64  `json:"confidence"`
	MediaID    string   `json:"mediaId"`
	// Destination, when set, selects the bundle group directly.
	Destination Destination `json:"destination,omitempty"`
}

// PrimaryPOI returns the first POI, if any.
func (a AnalysisResult) PrimaryPOI() (POI, bool) {
	if len(a.POIs) == 0 {
		return POI{}, false
	}
	return a.POIs[0], true
}

// MediaFile describes one uploaded item. URL submissions use type "url".
type MediaFile struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

type AnalyzeRequest struct {
	Media       []MediaFile `json:"media"`
	URL         string      `json:"url,omitempty"`
	Destination string      `json:"destination,omitempty"`
}
