// Package format renders bundle fields for people: prices, dates, CO2,
// durations and confidence labels. Used by the PDF export and planctl.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

const isoDate = "2006-01-02"

// Price formats whole dollars: "$1,240" at or above $1,000, "$980.00" below.
func Price(amount int) string {
	if amount >= 1000 || amount <= -1000 {
		return printer.Sprintf("$%d", amount)
	}
	return fmt.Sprintf("$%d.00", amount)
}

// DateRange renders two ISO dates as "Oct 8 - Oct 11". Unparseable input is
// echoed back unchanged.
func DateRange(start, end string) string {
	s, err1 := time.Parse(isoDate, start)
	e, err2 := time.Parse(isoDate, end)
	if err1 != nil || err2 != nil {
		return start + " - " + end
	}
	return s.Format("Jan 2") + " - " + e.Format("Jan 2")
}

// Date renders an ISO date as "October 8, 2025".
func Date(iso string) string {
	t, err := time.Parse(isoDate, iso)
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}

// DaysBetween returns the absolute whole-day distance between two ISO dates.
func DaysBetween(start, end string) (int, error) {
	s, err := time.Parse(isoDate, start)
	if err != nil {
		return 0, fmt.Errorf("start date: %w", err)
	}
	e, err := time.Parse(isoDate, end)
	if err != nil {
		return 0, fmt.Errorf("end date: %w", err)
	}
	d := e.Sub(s)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24)), nil
}

func CO2(kg int) string {
	if kg >= 1000 {
		return fmt.Sprintf("%.1ft CO₂", float64(kg)/1000)
	}
	return fmt.Sprintf("%dkg CO₂", kg)
}

// Duration renders hours as "45min", "1hr", "1hr 30min", "2d" or "2d 3hr".
// Rounding happens once, on the smallest unit shown, so 1.999 is "2hr" and
// 47.9 is "2d".
func Duration(hours float64) string {
	mins := int(math.Round(hours * 60))
	switch {
	case mins < 60:
		return fmt.Sprintf("%dmin", mins)
	case mins < 24*60:
		h, m := mins/60, mins%60
		if m == 0 {
			return fmt.Sprintf("%dhr", h)
		}
		return fmt.Sprintf("%dhr %dmin", h, m)
	}
	hrs := int(math.Round(hours))
	days, rem := hrs/24, hrs%24
	if rem == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd %dhr", days, rem)
}

func Stops(n int) string {
	switch n {
	case 0:
		return "Direct flight"
	case 1:
		return "1 stop"
	}
	return fmt.Sprintf("%d stops", n)
}

func ConfidenceLabel(c float64) string {
	switch {
	case c >= 0.9:
		return "Very High"
	case c >= 0.8:
		return "High"
	case c >= 0.7:
		return "Good"
	case c >= 0.6:
		return "Fair"
	}
	return "Low"
}

// Percent renders a 0..1 confidence as a rounded percentage.
func Percent(c float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(c*100)))
}

// Truncate cuts text to n runes and appends "...". A negative n is
// treated as 0.
func Truncate(text string, n int) string {
	n = max(n, 0)
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n]) + "..."
}

// Plural returns "1 bundle" / "3 bundles".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, strings.TrimSuffix(noun, "s"))
}
