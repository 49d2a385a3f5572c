package format

import (
	"fmt"
	"strings"

	"github.com/joshuapare/nsbin/internal/buf"
)

// SizeField selects how the declared buffer size is stored after the identifier.
type SizeField uint8

const (
	// SizeBinary stores the size as a little-endian uint16 followed by a reserved uint16.
	SizeBinary SizeField = iota
	// SizeHex stores the size as four ASCII hex digits, e.g. "01F4".
	SizeHex
)

func (f SizeField) String() string {
	switch f {
	case SizeBinary:
		return "binary"
	case SizeHex:
		return "hex"
	default:
		return fmt.Sprintf("SizeField(%d)", uint8(f))
	}
}

// ParseSizeField maps a form name ("binary", "hex") to a SizeField.
func ParseSizeField(s string) (SizeField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "binary", "bin", "le":
		return SizeBinary, nil
	case "hex", "text":
		return SizeHex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSizeField, s)
	}
}

// Decode reads the declared buffer size from a SizeFieldLen-byte field.
func (f SizeField) Decode(field []byte) (uint16, error) {
	if len(field) != SizeFieldLen {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrMalformedSizeField, SizeFieldLen, len(field))
	}
	switch f {
	case SizeBinary:
		return buf.U16LE(field), nil
	case SizeHex:
		v, ok := buf.HexU16(field)
		if !ok {
			return 0, fmt.Errorf("%w: %q is not four hex digits", ErrMalformedSizeField, field)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownSizeField, f)
	}
}

// Encode returns the SizeFieldLen-byte representation of size.
// The reserved slot of the binary form is zero.
func (f SizeField) Encode(size uint16) []byte {
	out := make([]byte, SizeFieldLen)
	switch f {
	case SizeHex:
		buf.PutHexU16(out, size)
	default:
		buf.PutU16LE(out, size)
	}
	return out
}
