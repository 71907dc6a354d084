//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos || windows)

package terminal

import (
	"fmt"
	"runtime"
)

func makeRaw(fd uintptr) (func() error, error) {
	return nil, fmt.Errorf("raw mode not supported on %s/%s", runtime.GOOS, runtime.GOARCH)
}
