//go:build linux

package benchmark

import (
	"os"

	"golang.org/x/sys/unix"
)

// advise hints the kernel about the access pattern. Errors are ignored
// since the hint has no effect on the bytes read.
func advise(f *os.File, random bool) {
	advice := unix.FADV_SEQUENTIAL
	if random {
		advice = unix.FADV_RANDOM
	}

	_ = unix.Fadvise(int(f.Fd()), 0, 0, advice)
}
