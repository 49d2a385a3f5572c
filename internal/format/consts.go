// Package format describes the on-disk shape of the namespace patch site.
//
// A patchable module carries, somewhere within its first 64 KiB:
//
//	+---------------------------+----------------+----------------------+
//	| identifier (32 chars)     | size field (4) | reserved buffer (n)  |
//	+---------------------------+----------------+----------------------+
//	  "D3F00FF1770DED978EC774BA389F2DC9"
//
// The size field declares n. It is either a little-endian uint16 followed by
// a reserved uint16, or four ASCII hex digits. Values 0xFFFA-0xFFFF are
// reserved for later revisions of the layout.
package format

const (
	// Identifier marks the start of the patch site.
	Identifier = "D3F00FF1770DED978EC774BA389F2DC9"

	// DefaultNamespace is applied whenever a requested namespace is rejected.
	DefaultNamespace = "System.Runtime.InteropServices"

	// DefaultBuffer is the reserved buffer size the stock modules ship with.
	DefaultBuffer = 0x01F4

	// WindowSize bounds how far into the artifact the identifier is searched for.
	WindowSize = 64 * 1024

	// SizeFieldLen is the width of the size field: two uint16 slots.
	SizeFieldLen = 2 * 2

	// ReservedMin is the first size-field value that is not a buffer size.
	ReservedMin = 0xFFFA

	// ReservedMax is the last reserved size-field value.
	ReservedMax = 0xFFFF

	// MarkerSuffix is appended to the artifact path to name the sidecar record.
	MarkerSuffix = ".ddNSi"

	// BackupSuffix is appended to the artifact path for the pre-patch copy.
	BackupSuffix = ".bak"
)

// FullSpan returns the number of bytes a patch rewrites for an identifier of
// identLen bytes and a declared buffer of size bytes.
func FullSpan(identLen int, size uint16) int {
	return identLen + SizeFieldLen + int(size)
}

// MarkerPath returns the sidecar path for the artifact at target.
func MarkerPath(target string) string {
	return target + MarkerSuffix
}

// BackupPath returns the backup path for the artifact at target.
func BackupPath(target string) string {
	return target + BackupSuffix
}
