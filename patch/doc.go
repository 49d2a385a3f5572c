// Package patch rewrites the namespace slot of a compiled module in place.
//
// The slot is found by searching the first 64 KiB of the artifact for a fixed
// identifier. The size field that follows declares how many reserved bytes
// belong to the slot; the patch rewrites identifier, size field and reserved
// bytes as one contiguous span and never touches anything outside it.
//
// Basic usage:
//
//	f, err := patch.Open("Lib.dll", fsync.Auto)
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	p := &patch.Patcher{Layout: format.LayoutPayload}
//	res, err := p.Apply(f, "My.Custom.Ns")
//
// An operation moves through Idle, Locating, Validating, Writing, Recording
// and Done. Every validation failure happens before Writing, so a rejected
// artifact is left byte-for-byte unchanged.
//
// The package does no locking. Callers must not patch the same artifact from
// two goroutines or processes at once.
package patch
