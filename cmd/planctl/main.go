// Command planctl runs the bundle planner against the compiled-in catalog
// from the terminal.
package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"wanderlens/internal/app"
	"wanderlens/internal/domain"
	"wanderlens/internal/fixtures"
)

type cli struct {
	svc    *app.PlanService
	output string
}

func main() {
	// stdout carries the command output
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{svc: app.NewPlanService(fixtures.New(), nil, app.Options{})}

	root := &cobra.Command{
		Use:   "planctl",
		Short: "Plan WanderLens bundles from the command line",
		Long: `planctl selects and filters travel bundles the same way the API does,
using the compiled-in catalog.

Example:
  planctl plan --destination tokyo --budget mid-range --eco
  planctl analyze shibuya.jpg --destination tokyo -o json
  planctl alternatives b1 --mode eco`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&c.output, "output", "o", "table", "output format: table, json or yaml")

	root.AddCommand(c.planCmd(), c.analyzeCmd(), c.alternativesCmd())
	return root
}

func (c *cli) planCmd() *cobra.Command {
	var (
		dest, poi, file string
		cons            domain.PlanningConstraints
		budget, style   string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Select a bundle group and apply constraints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				b, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if err := yaml.Unmarshal(b, &cons); err != nil {
					return fmt.Errorf("parse %s: %w", file, err)
				}
			}
			// flags win over the file
			if cmd.Flags().Changed("budget") {
				cons.Budget = domain.BudgetTier(budget)
			}
			if cmd.Flags().Changed("style") {
				cons.TravelStyle = domain.TravelStyle(style)
			}
			if cmd.Flags().Changed("accessible") {
				cons.Accessibility, _ = cmd.Flags().GetBool("accessible")
			}
			if cmd.Flags().Changed("eco") {
				cons.EcoFriendly, _ = cmd.Flags().GetBool("eco")
			}

			var a domain.AnalysisResult
			if dest != "" {
				d, ok := domain.ParseDestination(dest)
				if !ok {
					return fmt.Errorf("unknown destination %q", dest)
				}
				a.Destination = d
			}
			if poi != "" {
				a.POIs = []domain.POI{{Name: poi}}
			}
			res, err := c.svc.Plan(cmd.Context(), a, cons)
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), res, func(t *table) {
				t.title(fmt.Sprintf("%s: %d bundle(s)", res.Destination, len(res.Bundles)))
				if res.Relaxed {
					t.title("no bundle matched every constraint; showing the first of the group")
				}
				t.bundles(res.Bundles)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&dest, "destination", "", "destination code (santorini, tokyo, bali)")
	f.StringVar(&poi, "poi", "", "primary point of interest, matched when no destination is given")
	f.StringVarP(&file, "constraints", "c", "", "YAML file with planning constraints")
	f.StringVar(&budget, "budget", "", "budget tier: budget, mid-range or luxury")
	f.StringVar(&style, "style", "", "travel style: relaxed, active, cultural or adventure")
	f.Bool("accessible", false, "only stays with accessibility features")
	f.Bool("eco", false, "only eco-friendly bundles")
	return cmd
}

func (c *cli) analyzeCmd() *cobra.Command {
	var url, dest string
	cmd := &cobra.Command{
		Use:   "analyze [media files...]",
		Short: "Run the canned media analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.AnalyzeRequest{URL: url, Destination: dest}
			for _, p := range args {
				m := domain.MediaFile{Name: filepath.Base(p), Type: mime.TypeByExtension(filepath.Ext(p))}
				if st, err := os.Stat(p); err == nil {
					m.Size = st.Size()
				}
				req.Media = append(req.Media, m)
			}
			a, err := c.svc.Analyze(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), a, func(t *table) { t.analysis(a) })
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "media URL instead of files")
	cmd.Flags().StringVar(&dest, "destination", "", "destination hint")
	return cmd
}

func (c *cli) alternativesCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "alternatives [bundle-id]",
		Short: "Show alternatives for a bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := []string{mode}
			if mode == "" {
				modes = modes[:0]
				for _, m := range fixtures.Modes {
					modes = append(modes, string(m))
				}
			}
			out := make([]domain.Bundle, 0, len(modes))
			for _, m := range modes {
				b, err := c.svc.Alternative(cmd.Context(), args[0], m)
				if err != nil {
					return err
				}
				out = append(out, b)
			}
			return c.render(cmd.OutOrStdout(), out, func(t *table) { t.bundles(out) })
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "cheaper, eco, luxury or accessible (default all)")
	return cmd
}
