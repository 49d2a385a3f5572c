package patch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nsbin/internal/format"
)

func buildMem(t *testing.T, f Fixture) (*Mem, int64) {
	t.Helper()
	img, off, err := f.Build()
	require.NoError(t, err)
	return NewMem(img), off
}

func TestInspect(t *testing.T) {
	tests := []struct {
		name string
		fix  Fixture
	}{
		{"binary size field", Fixture{Prefix: 0x5D9, Suffix: 64, Buffer: format.DefaultBuffer}},
		{"hex size field", Fixture{Prefix: 10, Suffix: 1, Buffer: 0x20, SizeField: format.SizeHex}},
		{"zero buffer", Fixture{Prefix: 3, Buffer: 0}},
		{"identifier at offset zero", Fixture{Buffer: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, off := buildMem(t, tt.fix)

			info, err := Inspect(mem, nil, tt.fix.SizeField)
			require.NoError(t, err)
			assert.Equal(t, off, info.Site.Offset)
			assert.Equal(t, tt.fix.Buffer, info.Buffer)
			assert.Equal(t, 32+4+int(tt.fix.Buffer), info.Span)
			assert.Equal(t, mem.Bytes()[off:off+36], info.Header)
			assert.Equal(t, 0, mem.Writes)
		})
	}
}

func TestInspectErrors(t *testing.T) {
	t.Run("reserved value", func(t *testing.T) {
		mem, off := buildMem(t, Fixture{Prefix: 8, Suffix: 64, Buffer: 0xFFFB})
		_, err := Inspect(mem, nil, format.SizeBinary)

		var rv *ReservedValueError
		require.ErrorAs(t, err, &rv)
		assert.Equal(t, uint16(4), rv.Reserved)
		assert.Equal(t, off+32, rv.Offset)
	})

	t.Run("hex form on binary field", func(t *testing.T) {
		mem, _ := buildMem(t, Fixture{Buffer: 0x20})
		_, err := Inspect(mem, nil, format.SizeHex)
		require.ErrorIs(t, err, ErrMalformedSizeField)
	})

	t.Run("size field cut off", func(t *testing.T) {
		mem, _ := buildMem(t, Fixture{Prefix: 4, Buffer: 0x20})
		short := NewMem(mem.Bytes()[:4+32+2])
		_, err := Inspect(short, nil, format.SizeBinary)

		var tooSmall *TooSmallError
		require.ErrorAs(t, err, &tooSmall)
		assert.Equal(t, "size field", tooSmall.What)
	})

	t.Run("reserved buffer cut off", func(t *testing.T) {
		mem, _ := buildMem(t, Fixture{Prefix: 4, Buffer: 0x20})
		short := NewMem(mem.Bytes()[:len(mem.Bytes())-1])
		_, err := Inspect(short, nil, format.SizeBinary)

		var tooSmall *TooSmallError
		require.ErrorAs(t, err, &tooSmall)
		assert.Equal(t, "reserved buffer", tooSmall.What)
		assert.Equal(t, int64(4+32+4+0x20), tooSmall.Need)
	})
}

func TestBuildSpanPayload(t *testing.T) {
	mem, _ := buildMem(t, Fixture{Buffer: 16})
	info, err := Inspect(mem, nil, format.SizeBinary)
	require.NoError(t, err)

	data, err := BuildSpan(info, format.LayoutPayload, "Ns", []byte("Ns"))
	require.NoError(t, err)
	require.Len(t, data, info.Span)
	assert.Equal(t, info.Header, data[:36])
	assert.Equal(t, []byte("Ns"), data[36:38])
	assert.Equal(t, make([]byte, 14), data[38:])

	full := bytes.Repeat([]byte{'a'}, 16)
	_, err = BuildSpan(info, format.LayoutPayload, "full", full)
	require.NoError(t, err)

	_, err = BuildSpan(info, format.LayoutPayload, "over", append(full, 'a'))
	var tooLarge *NameTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 17, tooLarge.Len)
	assert.Equal(t, 16, tooLarge.Capacity)
	assert.Equal(t, 52, tooLarge.Span)
}

func TestBuildSpanInPlace(t *testing.T) {
	mem, _ := buildMem(t, Fixture{Buffer: 16})
	info, err := Inspect(mem, nil, format.SizeBinary)
	require.NoError(t, err)

	name := bytes.Repeat([]byte{'n'}, 52)
	data, err := BuildSpan(info, format.LayoutInPlace, "n", name)
	require.NoError(t, err)
	assert.Equal(t, name, data)

	data, err = BuildSpan(info, format.LayoutInPlace, "Ns", []byte("Ns"))
	require.NoError(t, err)
	assert.Equal(t, []byte("Ns"), data[:2])
	assert.Equal(t, make([]byte, 50), data[2:])

	_, err = BuildSpan(info, format.LayoutInPlace, "n", append(name, 'n'))
	require.ErrorIs(t, err, ErrNameTooLarge)
}

func TestBuildSpanInconsistentSiteInfo(t *testing.T) {
	// Span shorter than the capacity the buffer claims
	info := &SiteInfo{
		Site:   Site{IdentLen: 32},
		Buffer: 16,
		Header: make([]byte, 36),
		Span:   40,
	}
	_, err := BuildSpan(info, format.LayoutPayload, "Namespace", []byte("Namespace"))
	var tooLarge *NameTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 4, tooLarge.Capacity)
}

func TestNewPlanEncodingError(t *testing.T) {
	mem, _ := buildMem(t, Fixture{Buffer: 16})
	info, err := Inspect(mem, nil, format.SizeBinary)
	require.NoError(t, err)

	_, err = NewPlan(info, format.LayoutPayload, latin1(t), "名前")
	require.ErrorIs(t, err, ErrEncoding)
}
