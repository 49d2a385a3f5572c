package nsbin

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// copyFile copies size bytes of src to a new file at dst.
func copyFile(src io.ReaderAt, size int64, dst string) error {
	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, io.NewSectionReader(src, 0, size)); copyErr != nil {
		return fmt.Errorf("failed to copy data: %w", copyErr)
	}

	if syncErr := dstFile.Sync(); syncErr != nil {
		return fmt.Errorf("failed to sync destination: %w", syncErr)
	}

	return dstFile.Close()
}

// keepBackup reports whether a regular file already exists at path. The
// first backup holds the unpatched module, so later runs leave it alone.
func keepBackup(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	case !info.Mode().IsRegular():
		return false, fmt.Errorf("%s is not a regular file", path)
	}
	return true, nil
}
