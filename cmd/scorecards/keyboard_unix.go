//go:build linux || darwin

package main

import (
	"golang.org/x/sys/unix"
)

// cbreak disables line buffering and echo on fd so single key presses are
// readable, keeping signal keys and output processing intact
func cbreak(fd int) (func(), error) {
	old, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	state := *old
	state.Lflag &^= unix.ICANON | unix.ECHO
	state.Cc[unix.VMIN] = 1
	state.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &state); err != nil {
		return nil, err
	}

	return func() {
		unix.IoctlSetTermios(fd, ioctlSetTermios, old)
	}, nil
}
