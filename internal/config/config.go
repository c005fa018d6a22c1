// Package config loads server settings.
//
// Values are layered: built-in defaults, then an optional TOML file, then
// SCORECARDS_* environment variables (a .env file in the working directory
// is read first when present), then command-line flags applied by the
// caller.
package config

import (
	stderrors "errors"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/abrezinsky/scorecards/internal/errors"
	"github.com/abrezinsky/scorecards/internal/logger"
)

// EnvPrefix prefixes every environment variable the server reads
const EnvPrefix = "SCORECARDS_"

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultMaxRounds        = 10
	DefaultMaxCardsPerRound = 1000
	DefaultShutdownTimeout  = 5 * time.Second
)

// Config holds server settings
type Config struct {
	Host             string        `toml:"host"`
	Port             int           `toml:"port"`
	LogLevel         string        `toml:"log_level"`
	LogFormat        string        `toml:"log_format"`
	CatalogFile      string        `toml:"catalog_file"`
	MaxRounds        int           `toml:"max_rounds"`
	MaxCardsPerRound int           `toml:"max_cards_per_round"`
	DefaultQRCodes   bool          `toml:"qr_codes"`
	OpenBrowser      bool          `toml:"open_browser"`
	Keyboard         bool          `toml:"keyboard"`
	ShutdownTimeout  time.Duration `toml:"shutdown_timeout"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Port:             DefaultPort,
		LogLevel:         DefaultLogLevel,
		LogFormat:        DefaultLogFormat,
		MaxRounds:        DefaultMaxRounds,
		MaxCardsPerRound: DefaultMaxCardsPerRound,
		Keyboard:         true,
		ShutdownTimeout:  DefaultShutdownTimeout,
	}
}

// Load returns the defaults overlaid with the TOML file at path. An empty
// path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, errors.NotFoundf("config file %s not found", path)
		}
		return cfg, errors.Wrap(err, errors.ErrInternal, "failed to read config file")
	}
	if err := cfg.Decode(data); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto c. Keys not present keep their value.
func (c *Config) Decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid config file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.InvalidInputf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadDotEnv reads .env style files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrap(err, errors.ErrInvalidInput, "failed to load "+p)
		}
	}
	return nil
}

// ApplyEnv overlays SCORECARDS_* variables found by lookup onto c
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("HOST"); ok {
		c.Host = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := get("CATALOG"); ok {
		c.CatalogFile = v
	}

	ints := []struct {
		name   string
		target *int
	}{
		{"PORT", &c.Port},
		{"MAX_ROUNDS", &c.MaxRounds},
		{"MAX_CARDS_PER_ROUND", &c.MaxCardsPerRound},
	}
	for _, f := range ints {
		v, ok := get(f.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.InvalidInputf("%s%s: invalid integer %q", EnvPrefix, f.name, v)
		}
		*f.target = n
	}

	bools := []struct {
		name   string
		target *bool
	}{
		{"QR_CODES", &c.DefaultQRCodes},
		{"OPEN_BROWSER", &c.OpenBrowser},
		{"KEYBOARD", &c.Keyboard},
	}
	for _, f := range bools {
		v, ok := get(f.name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.InvalidInputf("%s%s: invalid boolean %q", EnvPrefix, f.name, v)
		}
		*f.target = b
	}

	if v, ok := get("SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.InvalidInputf("%sSHUTDOWN_TIMEOUT: invalid duration %q", EnvPrefix, v)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch {
	case c.Port < 1 || c.Port > 65535:
		return errors.InvalidInputf("port must be between 1 and 65535, got %d", c.Port)
	case !logger.ValidLevel(c.LogLevel):
		return errors.InvalidInputf("unknown log level %q", c.LogLevel)
	case !validFormat(c.LogFormat):
		return errors.InvalidInputf("unknown log format %q", c.LogFormat)
	case c.MaxRounds < 0:
		return errors.InvalidInput("max_rounds must not be negative")
	case c.MaxCardsPerRound < 0:
		return errors.InvalidInput("max_cards_per_round must not be negative")
	case c.ShutdownTimeout < 0:
		return errors.InvalidInput("shutdown_timeout must not be negative")
	}
	return nil
}

// Addr is the listen address
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func validFormat(f string) bool {
	switch strings.ToLower(strings.TrimSpace(f)) {
	case "text", "json", "logfmt":
		return true
	}
	return false
}
