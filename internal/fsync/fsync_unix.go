//go:build linux

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync is enough on Linux; full is ignored.
func fdatasync(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}
