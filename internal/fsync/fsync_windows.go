//go:build windows

package fsync

import (
	"os"

	"golang.org/x/sys/windows"
)

// FlushFileBuffers writes data and metadata; full is ignored.
func fdatasync(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
