package main

import (
	"context"
	"net"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abrezinsky/scorecards/internal/app"
	"github.com/abrezinsky/scorecards/internal/browser"
	"github.com/abrezinsky/scorecards/internal/config"
	"github.com/abrezinsky/scorecards/web"
)

// serveOpts holds the command-line flags for the serve command
type serveOpts struct {
	host       string
	port       int
	open       bool
	noKeyboard bool
	noBanner   bool
}

func addServeFlags(cmd *cobra.Command, opts *serveOpts) {
	flags := cmd.Flags()
	flags.StringVar(&opts.host, "host", "", "interface to listen on (default all)")
	flags.IntVar(&opts.port, "port", config.DefaultPort, "HTTP server port")
	flags.BoolVar(&opts.open, "open", false, "open the form in a browser once listening")
	flags.BoolVar(&opts.noKeyboard, "nokeyboard", false, "disable keyboard shortcuts")
	flags.BoolVar(&opts.noBanner, "nobanner", false, "skip the startup banner")
}

// applyServeFlags copies explicitly set serve flags onto cfg
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("open") {
		cfg.OpenBrowser, _ = flags.GetBool("open")
	}
	if flags.Changed("nokeyboard") {
		off, _ := flags.GetBool("nokeyboard")
		cfg.Keyboard = !off
	}
}

func (c *cli) serveCommand() *cobra.Command {
	var opts serveOpts
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scorecard form and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}
	addServeFlags(cmd, &opts)
	return cmd
}

func (c *cli) runServe(cmd *cobra.Command, opts *serveOpts) error {
	if !opts.noBanner {
		printBanner(c.out)
	}

	a, err := app.New(c.log, c.cfg, c.catalog, web.GetTemplatesFS(), web.GetStaticFS())
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", c.cfg.Addr())
	if err != nil {
		return err
	}
	port := c.cfg.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	localURL := "http://" + net.JoinHostPort("localhost", strconv.Itoa(port)) + "/"

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if c.cfg.OpenBrowser {
		if err := browser.Open(localURL); err != nil {
			c.log.Warn("Failed to open browser", "error", err)
		}
	}

	stdin := int(os.Stdin.Fd())
	if c.cfg.Keyboard && term.IsTerminal(stdin) {
		printKeyboardHelp(c.out)
		kb := &keyboard{
			out:     c.out,
			log:     c.log,
			formURL: localURL,
			open:    browser.Open,
			quit:    cancel,
		}
		go listenForKeyboard(ctx, os.Stdin, kb)
	}

	return a.Serve(ctx, ln)
}
