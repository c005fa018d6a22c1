package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abrezinsky/scorecards/internal/buildinfo"
	"github.com/abrezinsky/scorecards/internal/catalog"
	"github.com/abrezinsky/scorecards/internal/config"
	"github.com/abrezinsky/scorecards/internal/logger"
)

// cli holds state shared by all commands
type cli struct {
	out    io.Writer
	errOut io.Writer

	configFile  string
	catalogFile string
	logLevel    string

	cfg     config.Config
	log     *logger.CharmLogger
	catalog *catalog.Catalog
}

func newCLI(out, errOut io.Writer) *cli {
	return &cli{out: out, errOut: errOut}
}

func (c *cli) rootCommand() *cobra.Command {
	var serve serveOpts

	root := &cobra.Command{
		Use:   "scorecards",
		Short: "Scorecards prints competitor scorecards, four to an A4 page",
		Long: `Scorecards lays out blank competitor scorecards for a speedcubing competition
and renders them as a print-ready PDF, four cards to an A4 page.

Run without a command to serve the web form.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &serve)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "TOML config file")
	flags.StringVar(&c.catalogFile, "catalog", "", "TOML event catalog file (default built-in)")
	flags.StringVar(&c.logLevel, "loglevel", "", "log level: debug, info, warn, error")

	addServeFlags(root, &serve)

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.eventsCommand())
	root.AddCommand(c.versionCommand())
	return root
}

// setup resolves configuration, logger and catalog before any command runs.
// Precedence: defaults, config file, .env and SCORECARDS_* variables, flags.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	if c.catalogFile != "" {
		cfg.CatalogFile = c.catalogFile
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	applyServeFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	c.log = logger.NewWithOptions(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Writer: c.errOut,
	})

	if cfg.CatalogFile == "" {
		c.catalog = catalog.Default()
		return nil
	}
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return err
	}
	c.log.Debug("Loaded event catalog", "file", cfg.CatalogFile, "events", cat.Len())
	c.catalog = cat
	return nil
}
