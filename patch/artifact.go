package patch

import (
	"errors"
	"fmt"
	"io"
)

// Artifact is the byte-level view of a patch target.
type Artifact interface {
	io.ReaderAt
	io.WriterAt
	// Size is the artifact length in bytes.
	Size() int64
}

// syncer is implemented by artifacts backed by durable storage.
type syncer interface {
	Sync() error
}

// ReadWindow returns the first min(n, Size()) bytes of a.
func ReadWindow(a Artifact, n int) ([]byte, error) {
	size := a.Size()
	if int64(n) > size {
		n = int(size)
	}
	if n <= 0 {
		return []byte{}, nil
	}
	return readExact(a, 0, n)
}

// readExact reads exactly n bytes at off. io.EOF together with a full read is not an error.
func readExact(a io.ReaderAt, off int64, n int) ([]byte, error) {
	out := make([]byte, n)
	got, err := a.ReadAt(out, off)
	if got == n {
		return out, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return nil, fmt.Errorf("patch: read %d bytes at offset %d: %w", n, off, err)
}
