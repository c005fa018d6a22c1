package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode"

	"github.com/abrezinsky/scorecards/internal/logger"
)

var shortcuts = []struct {
	key  string
	help string
}{
	{"o", "Open the scorecard form in a browser"},
	{"h", "Toggle HTTP request logging"},
	{"l", "Cycle log level (debug → info → warn → error)"},
	{"q", "Quit server"},
	{"?", "Show this help"},
}

// keyboard binds single-key shortcuts to server actions
type keyboard struct {
	out     io.Writer
	log     *logger.CharmLogger
	formURL string
	open    func(string) error
	quit    func()
}

// handle performs the action bound to key and reports whether to keep
// listening
func (k *keyboard) handle(key byte) bool {
	switch unicode.ToLower(rune(key)) {
	case 'o':
		fmt.Fprintln(k.out, styleKey.Render("Opening scorecard form in browser..."))
		if err := k.open(k.formURL); err != nil {
			fmt.Fprintln(k.out, styleError.Render(fmt.Sprintf("Error opening browser: %v", err)))
		}
	case 'h':
		if k.log.IsHTTPLoggingEnabled() {
			k.log.DisableHTTPLogging()
			printWarning(k.out, "HTTP logging disabled")
		} else {
			k.log.EnableHTTPLogging()
			printSuccess(k.out, "HTTP logging enabled")
		}
	case 'l':
		level := cycleLogLevel(k.log)
		fmt.Fprintln(k.out, styleSuccess.Render("Log level: ")+styleWarning.Render(levelName(level)))
	case 'q', 0x03:
		printWarning(k.out, "Shutting down server...")
		k.quit()
		return false
	case '?':
		printKeyboardHelp(k.out)
	}
	return true
}

// cycleLogLevel moves the logger through debug -> info -> warn -> error
// and back to debug, returning the new level
func cycleLogLevel(log logger.Logger) slog.Level {
	var next slog.Level
	switch log.GetLevel() {
	case slog.LevelDebug:
		next = slog.LevelInfo
	case slog.LevelInfo:
		next = slog.LevelWarn
	case slog.LevelWarn:
		next = slog.LevelError
	case slog.LevelError:
		next = slog.LevelDebug
	default:
		next = slog.LevelInfo
	}
	log.SetLevel(next)
	return next
}

func levelName(l slog.Level) string {
	switch l {
	case slog.LevelDebug:
		return "debug"
	case slog.LevelWarn:
		return "warn"
	case slog.LevelError:
		return "error"
	default:
		return "info"
	}
}

// listenForKeyboard reads single key presses from in until ctx is done or
// a key asks to stop
func listenForKeyboard(ctx context.Context, in *os.File, k *keyboard) {
	restore, err := cbreak(int(in.Fd()))
	if err != nil {
		k.log.Debug("Keyboard shortcuts unavailable", "error", err)
		return
	}
	defer restore()

	keys := make(chan byte)
	go func() {
		defer close(keys)
		buf := make([]byte, 1)
		for {
			n, err := in.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			select {
			case keys <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-keys:
			if !ok || !k.handle(key) {
				return
			}
		}
	}
}
