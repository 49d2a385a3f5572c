// Package marker records where and with what a module was patched.
//
// The record lives next to the artifact at "<artifact>.ddNSi". It is CBOR
// with Core Deterministic Encoding (RFC 8949 §4.2), so the same patch always
// produces the same bytes. The patcher only ever writes it; inspection and
// undo tooling read it.
package marker

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"github.com/joshuapare/nsbin/internal/format"
	"github.com/joshuapare/nsbin/internal/writer"
)

// Version is the record layout written by this package.
const Version = 1

var (
	// ErrUnsupportedVersion indicates a record written by a newer layout.
	ErrUnsupportedVersion = errors.New("marker: unsupported record version")
	// ErrCorrupt indicates the sidecar could not be decoded.
	ErrCorrupt = errors.New("marker: corrupt record")
)

// Record is the provenance of one patch.
type Record struct {
	Version   uint8  `cbor:"1,keyasint"`
	Offset    int64  `cbor:"2,keyasint"`           // identifier offset in the artifact
	Buffer    uint16 `cbor:"3,keyasint"`           // declared buffer size before the patch
	Name      string `cbor:"4,keyasint"`           // namespace actually written
	Encoding  string `cbor:"5,keyasint,omitempty"` // text encoding label
	Layout    string `cbor:"6,keyasint,omitempty"`
	SizeField string `cbor:"7,keyasint,omitempty"`
	Span      int    `cbor:"8,keyasint,omitempty"` // bytes rewritten from Offset
	Digest    []byte `cbor:"9,keyasint,omitempty"` // BLAKE3-256 of the rewritten span
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("marker: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("marker: CBOR decoder initialization failed: " + err.Error())
	}
}

// Path returns the sidecar path for the artifact at target.
func Path(target string) string {
	return format.MarkerPath(target)
}

// Digest returns the BLAKE3-256 digest of a rewritten span.
func Digest(span []byte) []byte {
	sum := blake3.Sum256(span)
	return sum[:]
}

// DigestHex returns the digest as lower-case hex, or "" when none was recorded.
func (r *Record) DigestHex() string {
	return hex.EncodeToString(r.Digest)
}

// Matches reports whether span hashes to the recorded digest.
// A record without a digest matches nothing.
func (r *Record) Matches(span []byte) bool {
	if len(r.Digest) == 0 {
		return false
	}
	return bytes.Equal(r.Digest, Digest(span))
}

// Marshal encodes r. A zero Version is written as the current Version.
func Marshal(r *Record) ([]byte, error) {
	rec := *r
	if rec.Version == 0 {
		rec.Version = Version
	}
	return encMode.Marshal(&rec)
}

// Unmarshal decodes a sidecar image.
func Unmarshal(data []byte, r *Record) error {
	if err := decMode.Unmarshal(data, r); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if r.Version == 0 || r.Version > Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	return nil
}

// Write encodes r and hands the image to sink.
func Write(sink writer.Sink, r *Record) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("marker: encode: %w", err)
	}
	return sink.WriteFile(data)
}

// WriteFile atomically replaces the sidecar of target with r and returns its path.
func WriteFile(target string, r *Record) (string, error) {
	path := Path(target)
	if err := Write(&writer.FileWriter{Path: path}, r); err != nil {
		return path, err
	}
	return path, nil
}

// ReadFile loads the sidecar of target.
func ReadFile(target string) (*Record, error) {
	data, err := os.ReadFile(Path(target))
	if err != nil {
		return nil, fmt.Errorf("marker: %w", err)
	}
	var r Record
	if err := Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
