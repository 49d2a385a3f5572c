package nsbin

import (
	"golang.org/x/text/encoding"

	"github.com/joshuapare/nsbin/internal/logging"
	"github.com/joshuapare/nsbin/internal/textenc"
	"github.com/joshuapare/nsbin/patch"
)

// SiteReport describes the patch site of an artifact.
type SiteReport struct {
	Target    string `json:"target"`
	Offset    int64  `json:"offset"`
	IdentLen  int    `json:"ident_len"`
	Buffer    uint16 `json:"buffer"`
	Span      int    `json:"span"`
	Capacity  int    `json:"capacity"` // longest encoded name the layout accepts
	Encoding  string `json:"encoding"`
	Layout    string `json:"layout"`
	SizeField string `json:"size_field"`
}

// Locate finds and validates the patch site of targetPath without writing.
func Locate(targetPath string, enc encoding.Encoding, opts *Options) (*SiteReport, error) {
	if opts == nil {
		opts = &Options{}
	}
	f, err := patch.OpenReadOnly(targetPath)
	if err != nil {
		return nil, err
	}
	defer logging.DeferClose(opts.Logger, f, "failed to close artifact")

	info, err := opts.patcher(enc).Inspect(f)
	if err != nil {
		return nil, err
	}
	return &SiteReport{
		Target:    targetPath,
		Offset:    info.Site.Offset,
		IdentLen:  info.Site.IdentLen,
		Buffer:    info.Buffer,
		Span:      info.Span,
		Capacity:  info.Capacity(opts.Layout),
		Encoding:  textenc.Name(enc),
		Layout:    opts.Layout.String(),
		SizeField: opts.SizeField.String(),
	}, nil
}
