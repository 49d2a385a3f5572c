package patch

import (
	"errors"
	"io"
)

// Mem is an in-memory Artifact. It never grows: writes past the end fail.
type Mem struct {
	data []byte

	// Writes counts WriteAt calls.
	Writes int
	// WriteErr, when set, fails every WriteAt after writing ShortBy fewer bytes.
	WriteErr error
	// ShortBy is how many bytes a failing WriteAt leaves unwritten.
	ShortBy int
}

// NewMem wraps data. The slice is used directly, not copied.
func NewMem(data []byte) *Mem {
	return &Mem{data: data}
}

// Bytes returns the current contents.
func (m *Mem) Bytes() []byte { return m.data }

// Size implements Artifact.
func (m *Mem) Size() int64 { return int64(len(m.data)) }

// ReadAt implements io.ReaderAt.
func (m *Mem) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("patch: negative offset")
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements io.WriterAt.
func (m *Mem) WriteAt(p []byte, off int64) (int, error) {
	m.Writes++
	if off < 0 || off+int64(len(p)) > int64(len(m.data)) {
		return 0, io.ErrShortWrite
	}
	if m.WriteErr != nil {
		n := len(p) - m.ShortBy
		if n < 0 {
			n = 0
		}
		copy(m.data[off:], p[:n])
		return n, m.WriteErr
	}
	return copy(m.data[off:], p), nil
}
