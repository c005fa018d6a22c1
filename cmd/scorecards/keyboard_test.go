package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/abrezinsky/scorecards/internal/logger"
)

type keyboardSetup struct {
	kb     *keyboard
	out    *bytes.Buffer
	opened []string
	quits  int
}

func newKeyboardSetup(openErr error) *keyboardSetup {
	s := &keyboardSetup{out: &bytes.Buffer{}}
	s.kb = &keyboard{
		out:     s.out,
		log:     logger.NewWithOptions(logger.Options{Level: slog.LevelInfo, Writer: io.Discard}),
		formURL: "http://localhost:8080/",
		open: func(u string) error {
			s.opened = append(s.opened, u)
			return openErr
		},
		quit: func() { s.quits++ },
	}
	return s
}

func TestKeyboard_OpenForm(t *testing.T) {
	s := newKeyboardSetup(nil)

	if !s.kb.handle('o') {
		t.Error("expected to keep listening")
	}
	if len(s.opened) != 1 || s.opened[0] != "http://localhost:8080/" {
		t.Errorf("expected form URL opened, got %v", s.opened)
	}
}

func TestKeyboard_OpenFormError(t *testing.T) {
	s := newKeyboardSetup(errors.New("no display"))

	s.kb.handle('O')

	if !strings.Contains(s.out.String(), "no display") {
		t.Errorf("expected browser error reported, got %q", s.out.String())
	}
}

func TestKeyboard_ToggleHTTPLogging(t *testing.T) {
	s := newKeyboardSetup(nil)

	s.kb.handle('h')
	if !s.kb.log.IsHTTPLoggingEnabled() {
		t.Error("expected HTTP logging enabled")
	}
	s.kb.handle('h')
	if s.kb.log.IsHTTPLoggingEnabled() {
		t.Error("expected HTTP logging disabled")
	}
}

func TestKeyboard_CycleLevel(t *testing.T) {
	s := newKeyboardSetup(nil)

	s.kb.handle('l')

	if s.kb.log.GetLevel() != slog.LevelWarn {
		t.Errorf("expected warn, got %v", s.kb.log.GetLevel())
	}
	if !strings.Contains(s.out.String(), "warn") {
		t.Errorf("expected new level printed, got %q", s.out.String())
	}
}

func TestKeyboard_Quit(t *testing.T) {
	for _, key := range []byte{'q', 'Q', 0x03} {
		s := newKeyboardSetup(nil)

		if s.kb.handle(key) {
			t.Errorf("expected %q to stop listening", key)
		}
		if s.quits != 1 {
			t.Errorf("expected quit for %q", key)
		}
	}
}

func TestKeyboard_HelpAndUnknown(t *testing.T) {
	s := newKeyboardSetup(nil)

	if !s.kb.handle('?') || !strings.Contains(s.out.String(), "Keyboard shortcuts") {
		t.Errorf("expected help, got %q", s.out.String())
	}
	if !s.kb.handle('x') {
		t.Error("expected unknown keys to be ignored")
	}
	if len(s.opened) != 0 || s.quits != 0 {
		t.Error("expected no side effects")
	}
}

func TestCycleLogLevel(t *testing.T) {
	tests := []struct {
		from slog.Level
		to   slog.Level
	}{
		{slog.LevelDebug, slog.LevelInfo},
		{slog.LevelInfo, slog.LevelWarn},
		{slog.LevelWarn, slog.LevelError},
		{slog.LevelError, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(levelName(tt.from), func(t *testing.T) {
			log := logger.NewWithOptions(logger.Options{Level: tt.from, Writer: io.Discard})

			if got := cycleLogLevel(log); got != tt.to || log.GetLevel() != tt.to {
				t.Errorf("expected %v, got %v", tt.to, got)
			}
		})
	}
}
