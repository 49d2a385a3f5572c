//go:build darwin

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// macOS has no fdatasync. F_FULLFSYNC gets the data past the drive cache.
func fdatasync(f *os.File, full bool) error {
	if full {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}
