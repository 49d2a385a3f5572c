package format

import "errors"

var (
	// ErrMalformedSizeField indicates the size field could not be decoded in the selected form.
	ErrMalformedSizeField = errors.New("format: malformed size field")
	// ErrUnknownLayout indicates a layout name that is not recognised.
	ErrUnknownLayout = errors.New("format: unknown layout")
	// ErrUnknownSizeField indicates a size-field form name that is not recognised.
	ErrUnknownSizeField = errors.New("format: unknown size field form")
)
