package nsbin

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/nsbin/internal/format"
	"github.com/joshuapare/nsbin/internal/logging"
	"github.com/joshuapare/nsbin/internal/textenc"
	"github.com/joshuapare/nsbin/marker"
	"github.com/joshuapare/nsbin/namespace"
	"github.com/joshuapare/nsbin/patch"
)

// PatchReport describes a completed (or partially completed) patch.
type PatchReport struct {
	Target      string `json:"target"`
	Offset      int64  `json:"offset"`      // identifier offset
	Buffer      uint16 `json:"buffer"`      // declared buffer size
	Name        string `json:"name"`        // namespace written
	Requested   string `json:"requested"`   // namespace asked for
	Substituted bool   `json:"substituted"` // Name is DefaultNamespace because Requested was invalid
	IdentLen    int    `json:"ident_len"`   // identifier length in bytes
	Span        int    `json:"span"`        // bytes rewritten from Offset
	NameLen     int    `json:"name_len"`    // encoded name length
	Encoding    string `json:"encoding"`    // encoding label
	Layout      string `json:"layout"`      // payload or inplace
	MarkerPath  string `json:"marker_path"` // sidecar location
	BackupPath  string `json:"backup_path,omitempty"`
	State       State  `json:"-"`
}

// ApplyNamespace writes desiredName (or DefaultNamespace, when desiredName is
// invalid) into the module at targetPath and records the patch in the
// sidecar marker. enc encodes both identifier and name; nil means UTF-8.
//
// On ErrMarkerWrite the returned report is non-nil: the artifact was patched.
// On every other error the report is nil and, unless the error matches
// ErrWriteFailure, the artifact is unchanged.
func ApplyNamespace(targetPath, desiredName string, enc encoding.Encoding, opts *Options) (*PatchReport, error) {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.Logger.With().Str("target", targetPath).Logger()

	applied, substituted := namespace.Normalize(desiredName)
	if substituted {
		log.Warn().Str("requested", desiredName).Str("applied", applied).Msg("invalid namespace, using default")
	}

	f, err := patch.Open(targetPath, opts.Flush)
	if err != nil {
		return nil, err
	}
	defer logging.DeferClose(log, f, "failed to close artifact")

	p := opts.patcher(enc)
	p.Logger = log
	op := p.Begin(f)

	plan, err := op.Prepare(applied)
	if err != nil {
		return nil, err
	}

	rep := &PatchReport{
		Target:      targetPath,
		Offset:      plan.Site.Offset,
		Buffer:      plan.Buffer,
		Name:        plan.Name,
		Requested:   desiredName,
		Substituted: substituted,
		IdentLen:    plan.Site.IdentLen,
		Span:        plan.Span,
		NameLen:     len(plan.NameBytes),
		Encoding:    textenc.Name(enc),
		Layout:      plan.Layout.String(),
		MarkerPath:  marker.Path(targetPath),
	}

	if opts.CreateBackup {
		rep.BackupPath = format.BackupPath(targetPath)
		switch kept, err := keepBackup(rep.BackupPath); {
		case err != nil:
			return nil, op.Abort(fmt.Errorf("%w: %s: %w", patch.ErrBackup, rep.BackupPath, err))
		case kept:
			log.Debug().Str("backup", rep.BackupPath).Msg("existing backup kept")
		default:
			if err := copyFile(f, f.Size(), rep.BackupPath); err != nil {
				return nil, op.Abort(fmt.Errorf("%w: %s: %w", patch.ErrBackup, rep.BackupPath, err))
			}
			log.Debug().Str("backup", rep.BackupPath).Msg("backup created")
		}
	}

	if err := op.Write(); err != nil {
		return nil, err
	}

	err = op.Record(func(plan *patch.Plan) error {
		rec := &marker.Record{
			Offset:    plan.Site.Offset,
			Buffer:    plan.Buffer,
			Name:      plan.Name,
			Encoding:  rep.Encoding,
			Layout:    rep.Layout,
			SizeField: opts.SizeField.String(),
			Span:      plan.Span,
			Digest:    marker.Digest(plan.Data),
		}
		if _, err := marker.WriteFile(targetPath, rec); err != nil {
			return &patch.MarkerError{Path: rep.MarkerPath, Err: err}
		}
		return nil
	})
	rep.State = op.State()
	return rep, err
}
