// Package textenc resolves and applies the text encoding an artifact stores
// its strings in.
package textenc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding indicates an encoding name that could not be resolved.
var ErrUnknownEncoding = errors.New("textenc: unknown encoding")

// Default is the encoding used when the caller does not pick one.
var Default encoding.Encoding = unicode.UTF8

// Lookup resolves a WHATWG encoding label ("utf-8", "utf-16le",
// "windows-1252", ...). An empty label yields Default.
func Lookup(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Default, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	return enc, nil
}

// Name returns the canonical label for enc, or "custom" when enc is not
// registered in the index.
func Name(enc encoding.Encoding) string {
	if enc == nil {
		enc = Default
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "custom"
	}
	return name
}

// Encode converts s to enc. Runes enc cannot represent are an error rather
// than a silent replacement.
func Encode(enc encoding.Encoding, s string) ([]byte, error) {
	if enc == nil {
		enc = Default
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode %q as %s: %w", s, Name(enc), err)
	}
	return out, nil
}

// Decode converts b from enc to a Go string.
func Decode(enc encoding.Encoding, b []byte) (string, error) {
	if enc == nil {
		enc = Default
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("textenc: decode as %s: %w", Name(enc), err)
	}
	return string(out), nil
}
