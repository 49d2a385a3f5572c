package patch

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/nsbin/internal/buf"
	"github.com/joshuapare/nsbin/internal/format"
	"github.com/joshuapare/nsbin/internal/textenc"
)

// SiteInfo is a validated patch site read from an artifact.
type SiteInfo struct {
	Site   Site
	Buffer uint16 // declared buffer size
	Header []byte // identifier + size field exactly as stored
	Span   int    // identifier + size field + buffer
}

// Capacity is the encoded name length the layout accepts at this site.
func (s *SiteInfo) Capacity(layout format.Layout) int {
	return layout.Capacity(s.Site.IdentLen, s.Buffer)
}

// Plan is a fully validated write: Data is exactly Span bytes and goes to Site.Offset.
type Plan struct {
	SiteInfo
	Layout    format.Layout
	Name      string
	NameBytes []byte
	Data      []byte
}

// Inspect locates and validates the patch site without writing.
func Inspect(a Artifact, enc encoding.Encoding, form format.SizeField) (*SiteInfo, error) {
	site, err := Find(a, enc)
	if err != nil {
		return nil, err
	}
	return ReadSite(a, site, form)
}

// Find searches the first format.WindowSize bytes of a for the identifier.
func Find(a Artifact, enc encoding.Encoding) (Site, error) {
	ident, err := IdentifierBytes(enc)
	if err != nil {
		return Site{}, err
	}
	window, err := ReadWindow(a, format.WindowSize)
	if err != nil {
		return Site{}, err
	}
	return Locate(window, ident)
}

// ReadSite reads the size field at site, rejects reserved values and checks
// that the whole span lies inside the artifact.
func ReadSite(a Artifact, site Site, form format.SizeField) (*SiteInfo, error) {
	headerLen := site.IdentLen + format.SizeFieldLen
	if !buf.Fits(a.Size(), site.Offset, headerLen) {
		return nil, &TooSmallError{What: "size field", Need: site.Offset + int64(headerLen), Have: a.Size()}
	}
	header, err := readExact(a, site.Offset, headerLen)
	if err != nil {
		return nil, err
	}

	field, ok := buf.Slice(header, site.IdentLen, format.SizeFieldLen)
	if !ok {
		return nil, &TooSmallError{What: "size field", Need: int64(headerLen), Have: int64(len(header))}
	}
	raw, err := form.Decode(field)
	if err != nil {
		return nil, fmt.Errorf("at offset %d: %w", site.SizeFieldOffset(), err)
	}
	size, err := ValidateBuffer(raw, site.SizeFieldOffset())
	if err != nil {
		return nil, err
	}

	span := format.FullSpan(site.IdentLen, size)
	if !buf.Fits(a.Size(), site.Offset, span) {
		return nil, &TooSmallError{What: "reserved buffer", Need: site.Offset + int64(span), Have: a.Size()}
	}

	return &SiteInfo{Site: site, Buffer: size, Header: header, Span: span}, nil
}

// BuildSpan returns the span image for name: in the payload layout the stored
// header followed by the name, in the in-place layout the name alone, then
// zero padding up to span bytes. It fails rather than truncate.
func BuildSpan(info *SiteInfo, layout format.Layout, name string, nameBytes []byte) ([]byte, error) {
	capacity := info.Capacity(layout)
	if len(nameBytes) > capacity {
		return nil, &NameTooLargeError{
			Name:     name,
			Len:      len(nameBytes),
			Capacity: capacity,
			Span:     info.Span,
			Layout:   layout,
		}
	}

	data := make([]byte, info.Span)
	nameOff := layout.NameOffset(info.Site.IdentLen)
	if nameOff > 0 {
		copy(data, info.Header)
	}
	dst, ok := buf.Slice(data, nameOff, len(nameBytes))
	if !ok {
		return nil, &NameTooLargeError{
			Name:     name,
			Len:      len(nameBytes),
			Capacity: info.Span - nameOff,
			Span:     info.Span,
			Layout:   layout,
		}
	}
	copy(dst, nameBytes)
	return data, nil
}

// NewPlan validates name against info and builds the span image.
func NewPlan(info *SiteInfo, layout format.Layout, enc encoding.Encoding, name string) (*Plan, error) {
	nameBytes, err := textenc.Encode(enc, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	data, err := BuildSpan(info, layout, name, nameBytes)
	if err != nil {
		return nil, err
	}
	return &Plan{
		SiteInfo:  *info,
		Layout:    layout,
		Name:      name,
		NameBytes: nameBytes,
		Data:      data,
	}, nil
}

// WriteSpan writes the plan's span in a single WriteAt and syncs the artifact
// when it supports it.
func WriteSpan(a Artifact, p *Plan) error {
	n, err := a.WriteAt(p.Data, p.Site.Offset)
	if err == nil && n != len(p.Data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &WriteError{Offset: p.Site.Offset, Span: len(p.Data), Written: n, Err: err}
	}
	if s, ok := a.(syncer); ok {
		if err := s.Sync(); err != nil {
			return &WriteError{Offset: p.Site.Offset, Span: len(p.Data), Written: n, Err: fmt.Errorf("sync: %w", err)}
		}
	}
	return nil
}
