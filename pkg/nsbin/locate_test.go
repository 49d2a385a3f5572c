package nsbin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"

	"github.com/joshuapare/nsbin/patch"
)

func utf16LE(t *testing.T) encoding.Encoding {
	t.Helper()
	enc, err := LookupEncoding("utf-16le")
	require.NoError(t, err)
	return enc
}

func TestLocate(t *testing.T) {
	path, off := writeModule(t, patch.Fixture{Prefix: 0x5D9, Suffix: 8, Buffer: 0x01F4})
	before := readFile(t, path)

	rep, err := Locate(path, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, off, rep.Offset)
	assert.Equal(t, uint16(0x01F4), rep.Buffer)
	assert.Equal(t, 32+4+0x01F4, rep.Span)
	assert.Equal(t, 0x01F4, rep.Capacity)
	assert.Equal(t, "payload", rep.Layout)
	assert.Equal(t, before, readFile(t, path))

	rep, err = Locate(path, nil, &Options{Layout: LayoutInPlace})
	require.NoError(t, err)
	assert.Equal(t, rep.Span, rep.Capacity)
}

func TestLocateReadOnlyFile(t *testing.T) {
	path, _ := writeModule(t, patch.Fixture{Buffer: 0x10})
	require.NoError(t, os.Chmod(path, 0o444))
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	_, err := Locate(path, nil, nil)
	require.NoError(t, err)
}

func TestLocateErrors(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "missing"), nil, nil)
	require.ErrorIs(t, err, ErrArtifactNotFound)

	path, _ := writeModule(t, patch.Fixture{Buffer: 0xFFFC, Suffix: 64})
	_, err = Locate(path, nil, nil)
	require.ErrorIs(t, err, ErrUnsupportedReservedValue)
}
