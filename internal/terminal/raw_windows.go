//go:build windows

package terminal

import (
	"golang.org/x/sys/windows"
)

// makeRaw keeps Ctrl+C handled by the system and asks the console to deliver
// arrow keys as VT sequences.
func makeRaw(fd uintptr) (func() error, error) {
	h := windows.Handle(fd)

	var old uint32
	if err := windows.GetConsoleMode(h, &old); err != nil {
		return nil, err
	}

	mode := uint32(windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_VIRTUAL_TERMINAL_INPUT)
	if err := windows.SetConsoleMode(h, mode); err != nil {
		return nil, err
	}

	return func() error {
		return windows.SetConsoleMode(h, old)
	}, nil
}
