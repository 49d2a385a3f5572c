package patch

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"github.com/joshuapare/nsbin/internal/format"
	"github.com/joshuapare/nsbin/internal/textenc"
)

// Patcher holds the settings shared by every operation.
// The zero value patches UTF-8 artifacts with a binary size field in the
// payload layout and logs nothing.
type Patcher struct {
	Encoding  encoding.Encoding
	Layout    format.Layout
	SizeField format.SizeField
	Logger    zerolog.Logger
}

// Inspect locates and validates the patch site of a without writing.
func (p *Patcher) Inspect(a Artifact) (*SiteInfo, error) {
	return Inspect(a, p.Encoding, p.SizeField)
}

// Apply writes name into a and returns the executed plan. The name is used
// as given; run it through the namespace rule first.
func (p *Patcher) Apply(a Artifact, name string) (*Plan, error) {
	op := p.Begin(a)
	plan, err := op.Prepare(name)
	if err != nil {
		return nil, err
	}
	if err := op.Write(); err != nil {
		return plan, err
	}
	return plan, op.Record(nil)
}

// Begin starts an operation on a in the Idle state.
func (p *Patcher) Begin(a Artifact) *Operation {
	return &Operation{
		patcher: p,
		art:     a,
		state:   StateIdle,
		log:     p.Logger.With().Str("encoding", textenc.Name(p.Encoding)).Str("layout", p.Layout.String()).Logger(),
	}
}

// Operation is a single pass over one artifact. It is not safe for
// concurrent use.
type Operation struct {
	patcher *Patcher
	art     Artifact
	state   State
	plan    *Plan
	log     zerolog.Logger
}

// State returns the current state.
func (op *Operation) State() State { return op.state }

// Plan returns the prepared plan, or nil before Prepare succeeds.
func (op *Operation) Plan() *Plan { return op.plan }

func (op *Operation) to(next State) error {
	if !CanTransition(op.state, next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, op.state, next)
	}
	op.log.Debug().Str("from", op.state.String()).Str("to", next.String()).Msg("transition")
	op.state = next
	return nil
}

// Abort moves a not-yet-written operation to Failed and returns err.
// It is used by callers whose own pre-write steps fail (backups).
func (op *Operation) Abort(err error) error {
	if op.state == StateWriting || op.state == StateRecording || op.state.Terminal() {
		return err
	}
	op.state = StateFailed
	op.log.Debug().Err(err).Msg("operation aborted")
	return err
}

func (op *Operation) fail(err error) error {
	if op.state != StateRecording && !op.state.Terminal() {
		op.state = StateFailed
	}
	op.log.Debug().Err(err).Str("state", op.state.String()).Msg("operation failed")
	return err
}

// Prepare locates the site, validates the size field and builds the span
// image for name. Nothing is written.
func (op *Operation) Prepare(name string) (*Plan, error) {
	if err := op.to(StateLocating); err != nil {
		return nil, err
	}
	site, err := Find(op.art, op.patcher.Encoding)
	if err != nil {
		return nil, op.fail(err)
	}
	op.log.Debug().Int64("offset", site.Offset).Int("ident_len", site.IdentLen).Msg("identifier located")

	if err := op.to(StateValidating); err != nil {
		return nil, op.fail(err)
	}
	info, err := ReadSite(op.art, site, op.patcher.SizeField)
	if err != nil {
		return nil, op.fail(err)
	}
	plan, err := NewPlan(info, op.patcher.Layout, op.patcher.Encoding, name)
	if err != nil {
		return nil, op.fail(err)
	}
	op.log.Debug().
		Uint16("buffer", plan.Buffer).
		Int("span", plan.Span).
		Int("name_len", len(plan.NameBytes)).
		Msg("site validated")

	op.plan = plan
	return plan, nil
}

// Write performs the single span write of a prepared plan.
func (op *Operation) Write() error {
	if op.plan == nil || op.state != StateValidating {
		return fmt.Errorf("%w: write from %s", ErrIllegalTransition, op.state)
	}
	if err := op.to(StateWriting); err != nil {
		return err
	}
	if err := WriteSpan(op.art, op.plan); err != nil {
		op.log.Error().Err(err).Int64("offset", op.plan.Site.Offset).Msg("span write failed")
		return op.fail(err)
	}
	return nil
}

// Record runs record (when non-nil) after a successful write. A record
// failure leaves the operation PartiallyDone: the artifact is already patched.
func (op *Operation) Record(record func(*Plan) error) error {
	if err := op.to(StateRecording); err != nil {
		return err
	}
	if record != nil {
		if err := record(op.plan); err != nil {
			_ = op.to(StatePartiallyDone)
			op.log.Warn().Err(err).Msg("artifact patched, provenance not recorded")
			return err
		}
	}
	_ = op.to(StateDone)
	op.log.Info().
		Int64("offset", op.plan.Site.Offset).
		Uint16("buffer", op.plan.Buffer).
		Str("namespace", op.plan.Name).
		Msg("namespace applied")
	return nil
}
