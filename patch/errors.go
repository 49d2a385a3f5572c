package patch

import (
	"errors"
	"fmt"

	"github.com/joshuapare/nsbin/internal/format"
)

var (
	// ErrArtifactNotFound indicates the target is missing or can't be opened read/write.
	ErrArtifactNotFound = errors.New("patch: artifact not found")

	// ErrArtifactTooSmall indicates the target ends before a required structure.
	ErrArtifactTooSmall = errors.New("patch: artifact too small")

	// ErrIdentifierNotFound indicates the target is not a supported module.
	ErrIdentifierNotFound = errors.New("patch: identifier not found")

	// ErrUnsupportedReservedValue indicates the size field holds a reserved value.
	ErrUnsupportedReservedValue = errors.New("patch: unsupported reserved size value")

	// ErrNameTooLarge indicates the encoded name does not fit the slot.
	ErrNameTooLarge = errors.New("patch: name too large")

	// ErrWriteFailure indicates the span write failed; the artifact may be indeterminate.
	ErrWriteFailure = errors.New("patch: write failed")

	// ErrMarkerWrite indicates the artifact was patched but the marker was not recorded.
	ErrMarkerWrite = errors.New("patch: marker write failed")

	// ErrEncoding indicates the name or identifier could not be encoded.
	ErrEncoding = errors.New("patch: encoding failed")

	// ErrBackup indicates the pre-patch backup could not be created.
	ErrBackup = errors.New("patch: backup failed")

	// ErrMalformedSizeField indicates the size field is not valid in the selected form.
	ErrMalformedSizeField = format.ErrMalformedSizeField

	// ErrIllegalTransition indicates an operation step was called out of order.
	ErrIllegalTransition = errors.New("patch: illegal state transition")
)

// TooSmallError reports a structure that runs past the end of the artifact
// (or of the search window, for the identifier).
type TooSmallError struct {
	What string // "identifier", "size field", "reserved buffer"
	Need int64  // bytes required, counted from offset 0
	Have int64  // bytes available
}

func (e *TooSmallError) Error() string {
	return fmt.Sprintf("patch: artifact too small: %s needs %d bytes, have %d", e.What, e.Need, e.Have)
}

func (e *TooSmallError) Unwrap() error { return ErrArtifactTooSmall }

// ReservedValueError reports a size field inside [0xFFFA, 0xFFFF].
type ReservedValueError struct {
	Value    uint16 // raw size-field value
	Reserved uint16 // 0xFFFF - Value
	Offset   int64  // offset of the size field
}

func (e *ReservedValueError) Error() string {
	return fmt.Sprintf(
		"patch: size field 0x%04X at offset %d is reserved combination %d; not supported",
		e.Value, e.Offset, e.Reserved,
	)
}

func (e *ReservedValueError) Unwrap() error { return ErrUnsupportedReservedValue }

// NameTooLargeError reports an encoded name longer than the layout allows.
type NameTooLargeError struct {
	Name     string
	Len      int // encoded length
	Capacity int // bytes available to the name in this layout
	Span     int // full span length
	Layout   format.Layout
}

func (e *NameTooLargeError) Error() string {
	return fmt.Sprintf(
		"patch: name too large: %q encodes to %d bytes, %s layout allows %d (span %d)",
		e.Name, e.Len, e.Layout, e.Capacity, e.Span,
	)
}

func (e *NameTooLargeError) Unwrap() error { return ErrNameTooLarge }

// WriteError reports a failed or short span write. The bytes in
// [Offset, Offset+Span) may be partly rewritten.
type WriteError struct {
	Offset  int64
	Span    int
	Written int
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf(
		"patch: write failed at offset %d (%d of %d bytes written, artifact may be indeterminate): %v",
		e.Offset, e.Written, e.Span, e.Err,
	)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWriteFailure, e.Err} }

// MarkerError reports a marker that could not be recorded after a successful patch.
type MarkerError struct {
	Path string
	Err  error
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("patch: artifact patched but marker %s not written: %v", e.Path, e.Err)
}

func (e *MarkerError) Unwrap() []error { return []error{ErrMarkerWrite, e.Err} }
