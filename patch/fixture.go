package patch

import (
	"bytes"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/nsbin/internal/format"
)

// Fixture describes a synthetic module image containing one patch site.
type Fixture struct {
	Prefix    int               // filler bytes before the identifier
	Suffix    int               // filler bytes after the reserved buffer
	Buffer    uint16            // value stored in the size field
	SizeField format.SizeField  // size field form
	Encoding  encoding.Encoding // identifier encoding, UTF-8 when nil
	Fill      byte              // filler byte, 0xCC when zero
}

// Build returns the image and the identifier offset. Buffer reserved bytes
// (zeroed) follow the size field unless Buffer is a reserved value, in which
// case none do.
func (f Fixture) Build() ([]byte, int64, error) {
	ident, err := IdentifierBytes(f.Encoding)
	if err != nil {
		return nil, 0, err
	}
	fill := f.Fill
	if fill == 0 {
		fill = 0xCC
	}
	reserved := int(f.Buffer)
	if f.Buffer >= format.ReservedMin {
		reserved = 0
	}

	var b bytes.Buffer
	b.Grow(f.Prefix + len(ident) + format.SizeFieldLen + reserved + f.Suffix)
	b.Write(bytes.Repeat([]byte{fill}, f.Prefix))
	b.Write(ident)
	b.Write(f.SizeField.Encode(f.Buffer))
	b.Write(make([]byte, reserved))
	b.Write(bytes.Repeat([]byte{fill}, f.Suffix))
	return b.Bytes(), int64(f.Prefix), nil
}
