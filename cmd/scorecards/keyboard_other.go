//go:build !linux && !darwin

package main

import (
	"golang.org/x/term"
)

// cbreak puts fd into raw mode where the platform has no cbreak mode.
// Ctrl+C arrives as a key press there and quits through the shortcut.
func cbreak(fd int) (func(), error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() {
		term.Restore(fd, state)
	}, nil
}
