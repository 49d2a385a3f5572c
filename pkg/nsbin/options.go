package nsbin

import (
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"github.com/joshuapare/nsbin/internal/format"
	"github.com/joshuapare/nsbin/internal/fsync"
	"github.com/joshuapare/nsbin/internal/textenc"
	"github.com/joshuapare/nsbin/namespace"
	"github.com/joshuapare/nsbin/patch"
)

// Options controls a patch run. The zero value uses the payload layout, the
// binary size field, no backup and an fdatasync after the write.
type Options struct {
	// Layout selects where the name is written inside the span.
	Layout Layout

	// SizeField selects how the declared buffer size is stored.
	SizeField SizeField

	// CreateBackup copies the artifact to <artifact>.bak after validation
	// and before the write. An existing backup is kept, so it always holds
	// the module as it was before the first patch.
	CreateBackup bool

	// Flush selects how the span write is pushed to disk.
	Flush FlushMode

	// Logger receives operation logs. The zero value logs nothing.
	Logger zerolog.Logger
}

// Layout selects where the name bytes go (re-exported for convenience).
type Layout = format.Layout

// SizeField selects the size field form (re-exported for convenience).
type SizeField = format.SizeField

// FlushMode selects the post-write sync (re-exported for convenience).
type FlushMode = fsync.Mode

// State is the step an operation ended in (re-exported for convenience).
type State = patch.State

const (
	LayoutPayload = format.LayoutPayload
	LayoutInPlace = format.LayoutInPlace

	SizeBinary = format.SizeBinary
	SizeHex    = format.SizeHex

	FlushAuto = fsync.Auto
	FlushFull = fsync.Full
	FlushNone = fsync.None

	StateDone          = patch.StateDone
	StateFailed        = patch.StateFailed
	StatePartiallyDone = patch.StatePartiallyDone

	// DefaultNamespace replaces invalid names.
	DefaultNamespace = namespace.Default
	// Identifier is the string that marks the patch site.
	Identifier = format.Identifier
)

// Errors (re-exported for convenience).
var (
	ErrArtifactNotFound         = patch.ErrArtifactNotFound
	ErrArtifactTooSmall         = patch.ErrArtifactTooSmall
	ErrIdentifierNotFound       = patch.ErrIdentifierNotFound
	ErrUnsupportedReservedValue = patch.ErrUnsupportedReservedValue
	ErrNameTooLarge             = patch.ErrNameTooLarge
	ErrWriteFailure             = patch.ErrWriteFailure
	ErrMarkerWrite              = patch.ErrMarkerWrite
	ErrMalformedSizeField       = patch.ErrMalformedSizeField
	ErrEncoding                 = patch.ErrEncoding
	ErrBackup                   = patch.ErrBackup
)

// LookupEncoding resolves a WHATWG encoding label. "" yields UTF-8.
func LookupEncoding(label string) (encoding.Encoding, error) {
	return textenc.Lookup(label)
}

func (o *Options) patcher(enc encoding.Encoding) *patch.Patcher {
	return &patch.Patcher{
		Encoding:  enc,
		Layout:    o.Layout,
		SizeField: o.SizeField,
		Logger:    o.Logger,
	}
}

// ParseLayout resolves "payload" or "inplace".
func ParseLayout(s string) (Layout, error) { return format.ParseLayout(s) }

// ParseSizeField resolves "binary" or "hex".
func ParseSizeField(s string) (SizeField, error) { return format.ParseSizeField(s) }

// ParseFlushMode resolves "auto", "full" or "none".
func ParseFlushMode(s string) (FlushMode, error) { return fsync.ParseMode(s) }
