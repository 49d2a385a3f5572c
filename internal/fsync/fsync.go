// Package fsync pushes written artifact bytes down to stable storage.
package fsync

import (
	"fmt"
	"os"
	"strings"
)

// Mode selects how hard Flush tries.
type Mode int

const (
	// Auto flushes file data (fdatasync or the platform equivalent).
	Auto Mode = iota
	// Full additionally asks the drive to empty its write cache where the
	// platform allows it (F_FULLFSYNC on macOS).
	Full
	// None skips the flush. The bytes are still in the page cache.
	None
)

func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Full:
		return "full"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// ParseMode maps "auto", "full" or "none" to a Mode. Empty means Auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "full":
		return Full, nil
	case "none", "off":
		return None, nil
	default:
		return Auto, fmt.Errorf("fsync: unknown mode %q", s)
	}
}

// Flush syncs f according to mode.
func Flush(f *os.File, mode Mode) error {
	if f == nil || mode == None {
		return nil
	}
	return fdatasync(f, mode == Full)
}
