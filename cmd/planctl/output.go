package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"wanderlens/internal/domain"
	"wanderlens/internal/format"
)

// render writes v in the selected format. Table output is built by fill.
func (c *cli) render(w io.Writer, v any, fill func(*table)) error {
	switch c.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		// go through JSON so field names match the API
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
		fill(t)
		return t.tw.Flush()
	}
	return fmt.Errorf("unknown output format %q", c.output)
}

type table struct{ tw *tabwriter.Writer }

func (t *table) title(s string) { fmt.Fprintln(t.tw, s) }

func (t *table) bundles(bs []domain.Bundle) {
	fmt.Fprintln(t.tw, "ID\tTITLE\tPRICE\tDATES\tFLIGHT\tSTAY\tBADGES")
	for _, b := range bs {
		flight := fmt.Sprintf("%s-%s, %s", b.Flight.From, b.Flight.To, format.Stops(b.Flight.Stops))
		if b.Flight.CO2Kg != nil {
			flight += ", " + format.CO2(*b.Flight.CO2Kg)
		}
		stay := fmt.Sprintf("%s (%.1f)", format.Truncate(b.Stay.Name, 28), b.Stay.Rating)
		fmt.Fprintf(t.tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID,
			format.Truncate(b.Title, 32),
			format.Price(b.PricePP),
			format.DateRange(b.Dates.Start, b.Dates.End),
			flight,
			stay,
			strings.Join(b.Badges, ","),
		)
	}
}

func (t *table) analysis(a domain.AnalysisResult) {
	fmt.Fprintf(t.tw, "media\t%s\n", a.MediaID)
	fmt.Fprintf(t.tw, "destination\t%s\n", a.Destination)
	fmt.Fprintf(t.tw, "confidence\t%s (%s)\n", format.Percent(a.Confidence), format.ConfidenceLabel(a.Confidence))
	fmt.Fprintf(t.tw, "season\t%s\n", a.Season)
	fmt.Fprintf(t.tw, "vibe\t%s\n", strings.Join(a.Vibe, ", "))
	fmt.Fprintf(t.tw, "activities\t%s\n", strings.Join(a.Activities, ", "))
	for _, p := range a.POIs {
		fmt.Fprintf(t.tw, "poi\t%s (%.4f, %.4f) %s\n", p.Name, p.Lat, p.Lng, format.Percent(p.Confidence))
	}
}
