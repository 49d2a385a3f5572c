package patch

import (
	"fmt"
	"os"

	"github.com/joshuapare/nsbin/internal/fsync"
)

// File is an Artifact backed by a file opened read/write.
type File struct {
	f    *os.File
	path string
	size int64
	mode fsync.Mode
}

// Open opens path read/write. The size is taken once; a patch never grows
// the file. mode controls how Sync flushes the span write.
func Open(path string, mode fsync.Mode) (*File, error) {
	return openFile(path, os.O_RDWR, mode)
}

// OpenReadOnly opens path for inspection. WriteAt on the result fails.
func OpenReadOnly(path string) (*File, error) {
	return openFile(path, os.O_RDONLY, fsync.None)
}

func openFile(path string, flag int, mode fsync.Mode) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrArtifactNotFound)
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArtifactNotFound, err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %w", ErrArtifactNotFound, err)
	}
	if !st.Mode().IsRegular() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrArtifactNotFound, path)
	}
	return &File{f: f, path: path, size: st.Size(), mode: mode}, nil
}

// Path returns the path the file was opened from.
func (f *File) Path() string { return f.path }

// Size returns the file length at open time.
func (f *File) Size() int64 { return f.size }

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) { return f.f.ReadAt(p, off) }

// WriteAt implements io.WriterAt.
func (f *File) WriteAt(p []byte, off int64) (int, error) { return f.f.WriteAt(p, off) }

// Sync flushes written bytes according to the mode given to Open.
func (f *File) Sync() error { return fsync.Flush(f.f, f.mode) }

// Close releases the file handle. Calling Close twice is a no-op.
func (f *File) Close() error {
	if f == nil || f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}
