//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package terminal

import (
	"golang.org/x/sys/unix"
)

// makeRaw turns off canonical mode and echo on fd. Output processing is left
// alone so newlines still return the carriage.
func makeRaw(fd uintptr) (func() error, error) {
	old, err := unix.IoctlGetTermios(int(fd), ioctlReadTermios)
	if err != nil {
		return nil, err
	}

	raw := *old
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(int(fd), ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}

	return func() error {
		return unix.IoctlSetTermios(int(fd), ioctlWriteTermios, old)
	}, nil
}
