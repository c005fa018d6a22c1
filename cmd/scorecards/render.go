package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abrezinsky/scorecards/internal/config"
	"github.com/abrezinsky/scorecards/internal/services"
)

// renderOpts holds the command-line flags for the render command
type renderOpts struct {
	output string // PDF path, default {name}_Scorecards.pdf
	layout bool   // print the JSON plan instead of writing a PDF
}

func (c *cli) renderCommand() *cobra.Command {
	var opts renderOpts
	cmd := &cobra.Command{
		Use:   "render FILE.toml",
		Short: "Render the competition described in a TOML file to a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF path")
	cmd.Flags().BoolVar(&opts.layout, "layout", false, "print the page layout as JSON instead")
	return cmd
}

func (c *cli) newService() *services.ScorecardService {
	return services.NewScorecardService(c.log, c.catalog, services.WithLimits(services.Limits{
		MaxRounds:        c.cfg.MaxRounds,
		MaxCardsPerRound: c.cfg.MaxCardsPerRound,
	}))
}

func (c *cli) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	comp, err := config.LoadCompetition(path, c.cfg.DefaultQRCodes)
	if err != nil {
		return err
	}
	svc := c.newService()

	if opts.layout {
		doc, err := svc.Plan(cmd.Context(), comp)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	sc, err := svc.Generate(cmd.Context(), comp)
	if err != nil {
		return err
	}
	out := opts.output
	if out == "" {
		out = sc.Filename
	}
	if err := os.WriteFile(out, sc.PDF, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess(c.out, "Rendered %d cards on %d pages", sc.Cards, sc.Pages)
	printFile(c.out, out)
	return nil
}
