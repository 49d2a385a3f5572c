//go:build freebsd

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// FreeBSD has no fdatasync in x/sys; fsync covers data and metadata.
func fdatasync(f *os.File, _ bool) error {
	return unix.Fsync(int(f.Fd()))
}
