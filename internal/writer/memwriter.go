package writer

// MemWriter captures the file image in memory.
type MemWriter struct {
	Buf []byte
	// Err, when set, is returned by WriteFile instead of storing the image.
	Err error
}

// WriteFile stores a copy of data.
func (w *MemWriter) WriteFile(data []byte) error {
	if w.Err != nil {
		return w.Err
	}
	w.Buf = append(w.Buf[:0], data...)
	return nil
}
