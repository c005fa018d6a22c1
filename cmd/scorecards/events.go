package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abrezinsky/scorecards/internal/buildinfo"
)

func (c *cli) eventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List the events in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, name := range c.catalog.Names() {
				fmt.Fprintf(c.out, "%s %s\n", styleNumber.Render(fmt.Sprintf("%3d", i+1)), name)
			}
			return nil
		},
	}
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, buildinfo.String())
			return nil
		},
	}
}
