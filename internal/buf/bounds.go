package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Fits reports whether a span of n bytes starting at off ends at or before size.
// Used for file-level checks where the data is not in memory.
func Fits(size int64, off int64, n int) bool {
	if off < 0 || n < 0 || size < 0 {
		return false
	}
	if off > math.MaxInt64-int64(n) {
		return false
	}
	return off+int64(n) <= size
}
