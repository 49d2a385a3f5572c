// Package buf contains bounds-checked helpers for reading the patch site.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// PutU16LE writes v to the first two bytes of b. It is a no-op when b is too short.
func PutU16LE(b []byte, v uint16) {
	if len(b) < 2 {
		return
	}
	binary.LittleEndian.PutUint16(b, v)
}

// HexU16 decodes exactly four ASCII hex digits (either case) into a uint16.
// ok is false when b is not four bytes long or contains a non-hex byte.
func HexU16(b []byte) (v uint16, ok bool) {
	if len(b) != 4 {
		return 0, false
	}
	for _, c := range b {
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		v = v<<4 | uint16(d)
	}
	return v, true
}

// PutHexU16 writes v as four upper-case ASCII hex digits into b.
func PutHexU16(b []byte, v uint16) {
	const digits = "0123456789ABCDEF"
	if len(b) < 4 {
		return
	}
	b[0] = digits[v>>12&0xF]
	b[1] = digits[v>>8&0xF]
	b[2] = digits[v>>4&0xF]
	b[3] = digits[v&0xF]
}
