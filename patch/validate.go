package patch

import "github.com/joshuapare/nsbin/internal/format"

// ValidateBuffer passes declared buffer sizes below 0xFFFA through unchanged.
// Values in [0xFFFA, 0xFFFF] are held back for later layout revisions and fail
// with a *ReservedValueError; they are never coerced into a size.
// off is the size-field offset, used only for the error.
func ValidateBuffer(v uint16, off int64) (uint16, error) {
	if v < format.ReservedMin {
		return v, nil
	}
	return 0, &ReservedValueError{
		Value:    v,
		Reserved: format.ReservedMax - v,
		Offset:   off,
	}
}
