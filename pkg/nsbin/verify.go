package nsbin

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/joshuapare/nsbin/internal/buf"
	"github.com/joshuapare/nsbin/internal/format"
	"github.com/joshuapare/nsbin/internal/logging"
	"github.com/joshuapare/nsbin/internal/textenc"
	"github.com/joshuapare/nsbin/marker"
	"github.com/joshuapare/nsbin/patch"
)

// Verification compares an artifact against its marker.
type Verification struct {
	Record *marker.Record
	// Intact is true when the recorded span still hashes to the recorded digest.
	Intact bool
	// Name is the namespace decoded from the artifact, empty when the
	// recorded span cannot be read back.
	Name string
	// Reason explains a false Intact.
	Reason string
}

// Verify reads the marker of targetPath and checks that the span it
// describes is still what the patch wrote.
func Verify(targetPath string, logger zerolog.Logger) (*Verification, error) {
	rec, err := marker.ReadFile(targetPath)
	if err != nil {
		return nil, err
	}

	f, err := patch.OpenReadOnly(targetPath)
	if err != nil {
		return nil, err
	}
	defer logging.DeferClose(logger, f, "failed to close artifact")

	v := &Verification{Record: rec}
	switch {
	case len(rec.Digest) == 0:
		v.Reason = "marker has no digest"
		return v, nil
	case !buf.Fits(f.Size(), rec.Offset, rec.Span):
		v.Reason = "recorded span lies outside the artifact"
		return v, nil
	}

	span := make([]byte, rec.Span)
	if _, err := f.ReadAt(span, rec.Offset); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	v.Intact = rec.Matches(span)
	if name, err := writtenName(rec, span); err != nil {
		logger.Debug().Err(err).Msg("namespace not decodable from artifact")
	} else {
		v.Name = name
	}
	switch {
	case !v.Intact:
		v.Reason = "span differs from the recorded digest"
	case v.Name != rec.Name:
		v.Intact = false
		v.Reason = "decoded namespace differs from the marker"
	}
	return v, nil
}

// writtenName decodes the namespace stored in span using the encoding and
// layout recorded in rec. Trailing zero code units are padding.
func writtenName(rec *marker.Record, span []byte) (string, error) {
	enc, err := textenc.Lookup(rec.Encoding)
	if err != nil {
		return "", err
	}
	layout, err := format.ParseLayout(rec.Layout)
	if err != nil {
		return "", err
	}
	nameOff := layout.NameOffset(rec.Span - int(rec.Buffer) - format.SizeFieldLen)
	region, ok := buf.Slice(span, nameOff, len(span)-nameOff)
	if !ok {
		return "", fmt.Errorf("name offset %d outside span of %d bytes", nameOff, len(span))
	}
	nul, err := textenc.Encode(enc, "\x00")
	if err != nil {
		return "", err
	}
	return textenc.Decode(enc, trimZeroUnits(region, len(nul)))
}

func trimZeroUnits(b []byte, width int) []byte {
	if width < 1 {
		width = 1
	}
	for len(b) >= width && isZero(b[len(b)-width:]) {
		b = b[:len(b)-width]
	}
	return b
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
