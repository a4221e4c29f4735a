// Package pdf renders a shareable bundle itinerary as a one-page PDF.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"wanderlens/internal/domain"
	"wanderlens/internal/format"
)

// Itinerary writes the bundle of v as a PDF document to w.
func Itinerary(w io.Writer, v domain.ShareView) error {
	b := v.Bundle
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("WanderLens - "+b.Title, true)
	doc.SetCreator("WanderLens", true)
	doc.SetMargins(20, 20, 20)
	doc.AddPage()

	// core fonts are cp1252; CO₂ is spelled out as CO2 below
	tr := doc.UnicodeTranslatorFromDescriptor("")

	// ── Header Bar ───────────────────────────────────────────
	doc.SetFillColor(15, 76, 92)
	doc.Rect(0, 0, 210, 28, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(20, 8)
	doc.CellFormat(170, 10, "WanderLens", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(20, 18)
	doc.CellFormat(170, 6, tr("Trip itinerary - "+b.Title), "", 1, "L", false, 0, "")
	doc.SetY(35)
	doc.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		doc.SetFillColor(15, 76, 92)
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		doc.SetTextColor(0, 0, 0)
		doc.Ln(2)
	}

	row := func(label, value string) {
		if value == "" {
			return
		}
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(45, 7, tr(label), "", 0, "L", false, 0, "")
		doc.SetTextColor(20, 20, 20)
		doc.SetFont("Helvetica", "B", 10)
		doc.MultiCell(125, 7, tr(value), "", "L", false)
	}

	sectionHeader("Overview")
	row("Price", format.Price(b.PricePP)+" per person")
	row("Dates", format.DateRange(b.Dates.Start, b.Dates.End))
	if n, err := format.DaysBetween(b.Dates.Start, b.Dates.End); err == nil {
		row("Length", format.Plural(n, "night"))
	}
	row("Badges", strings.Join(b.Badges, ", "))
	doc.Ln(4)

	sectionHeader("Flight")
	f := b.Flight
	row("Route", f.From+" to "+f.To)
	row("Carrier", f.Carrier)
	row("Stops", format.Stops(f.Stops))
	row("Fare", format.Price(f.Price))
	if f.CO2Kg != nil {
		row("Emissions", fmt.Sprintf("%dkg CO2", *f.CO2Kg))
	}
	doc.Ln(4)

	sectionHeader("Stay")
	s := b.Stay
	row("Hotel", s.Name)
	row("Rating", fmt.Sprintf("%.1f / 5.0", s.Rating))
	if s.PricePerNight != nil && s.Nights != nil {
		rate, nights := *s.PricePerNight, *s.Nights
		row("Rate", fmt.Sprintf("%s/night x %s = %s",
			format.Price(rate), format.Plural(nights, "night"), format.Price(rate*nights)))
	}
	row("Accessibility", strings.Join(s.Accessibility, ", "))
	doc.Ln(4)

	if len(b.Activities) > 0 {
		sectionHeader("Activities")
		for i, a := range b.Activities {
			line := a.Name
			if a.DurationHrs != nil {
				line += " (" + format.Duration(*a.DurationHrs) + ")"
			}
			if a.Notes != "" {
				line += " - " + a.Notes
			}
			row(fmt.Sprintf("%d.", i+1), line)
		}
		doc.Ln(4)
	}

	if b.EcoNote != "" || b.VisaNote != "" || b.SurgeNote != "" {
		sectionHeader("Good to know")
		row("Eco", b.EcoNote)
		row("Visa", b.VisaNote)
		row("Pricing", b.SurgeNote)
		doc.Ln(4)
	}

	// ── Footer ────────────────────────────────────────────────
	doc.SetY(-22)
	doc.SetDrawColor(200, 200, 200)
	doc.SetLineWidth(0.3)
	doc.Line(20, doc.GetY(), 190, doc.GetY())
	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(150, 150, 150)
	footer := "Sample itinerary - not a booking confirmation"
	if v.URL != "" {
		footer += " - " + v.URL
	}
	doc.CellFormat(0, 8, tr(footer), "", 0, "C", false, 0, "")

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render itinerary: %w", err)
	}
	return nil
}
