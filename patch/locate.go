package patch

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/nsbin/internal/format"
	"github.com/joshuapare/nsbin/internal/textenc"
)

// Site is where the identifier was found.
type Site struct {
	Offset   int64 // offset of the first identifier byte
	IdentLen int   // identifier length in bytes
}

// SizeFieldOffset is the offset of the size field that follows the identifier.
func (s Site) SizeFieldOffset() int64 {
	return s.Offset + int64(s.IdentLen)
}

// IdentifierBytes returns the identifier encoded with enc (UTF-8 when nil).
func IdentifierBytes(enc encoding.Encoding) ([]byte, error) {
	ident, err := textenc.Encode(enc, format.Identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: identifier: %w", ErrEncoding, err)
	}
	return ident, nil
}

// Locate returns the site of the first occurrence of ident in window.
func Locate(window, ident []byte) (Site, error) {
	if len(ident) == 0 {
		return Site{}, fmt.Errorf("%w: empty identifier", ErrEncoding)
	}
	if len(window) < len(ident) {
		return Site{}, &TooSmallError{What: "identifier", Need: int64(len(ident)), Have: int64(len(window))}
	}
	pos := bytes.Index(window, ident)
	if pos < 0 {
		return Site{}, fmt.Errorf("%w: searched %d bytes", ErrIdentifierNotFound, len(window))
	}
	return Site{Offset: int64(pos), IdentLen: len(ident)}, nil
}
