package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Logger defines the logging interface used throughout the application
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	SetLevel(level slog.Level)
	GetLevel() slog.Level
	EnableHTTPLogging()
	DisableHTTPLogging()
	IsHTTPLoggingEnabled() bool
}

// TimeFormat is the timestamp layout for log lines
const TimeFormat = "15:04:05.00"

// CharmLogger is a slog.Logger backed by a charmbracelet/log handler
type CharmLogger struct {
	base        *log.Logger
	logger      *slog.Logger
	httpLogging atomic.Bool
}

var _ Logger = (*CharmLogger)(nil)

// Options configures NewWithOptions
type Options struct {
	Level  slog.Level
	Format string // text, json or logfmt
	Writer io.Writer
}

// New creates a logger writing text to stderr at info level
func New() *CharmLogger {
	return NewWithLevel(slog.LevelInfo)
}

// NewWithLevel creates a logger writing text to stderr at the given level
func NewWithLevel(level slog.Level) *CharmLogger {
	return NewWithOptions(Options{Level: level})
}

// NewWithOptions creates a logger. A nil Writer means stderr.
func NewWithOptions(opts Options) *CharmLogger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	base := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
		Level:           log.Level(opts.Level),
		Formatter:       ParseFormat(opts.Format),
	})
	return &CharmLogger{
		base:   base,
		logger: slog.New(base),
	}
}

// ParseLevel converts a string log level to slog.Level.
// Accepts: debug, info, warn, error (case-insensitive).
// Returns slog.LevelInfo if the level is not recognized.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether ParseLevel recognizes level
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// ParseFormat maps json and logfmt to their formatters; anything else is text
func ParseFormat(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// Slog returns the underlying slog.Logger
func (l *CharmLogger) Slog() *slog.Logger {
	return l.logger
}

func (l *CharmLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *CharmLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *CharmLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *CharmLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// SetLevel changes the logging level dynamically
func (l *CharmLogger) SetLevel(level slog.Level) {
	l.base.SetLevel(log.Level(level))
}

// GetLevel returns the current logging level
func (l *CharmLogger) GetLevel() slog.Level {
	return slog.Level(l.base.GetLevel())
}

// EnableHTTPLogging enables HTTP request logging
func (l *CharmLogger) EnableHTTPLogging() {
	l.httpLogging.Store(true)
}

// DisableHTTPLogging disables HTTP request logging
func (l *CharmLogger) DisableHTTPLogging() {
	l.httpLogging.Store(false)
}

// IsHTTPLoggingEnabled returns whether HTTP logging is enabled
func (l *CharmLogger) IsHTTPLoggingEnabled() bool {
	return l.httpLogging.Load()
}

// Nop returns a logger that discards everything
func Nop() *CharmLogger {
	return NewWithOptions(Options{Level: slog.LevelError + 4, Writer: io.Discard})
}
