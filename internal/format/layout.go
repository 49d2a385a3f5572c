package format

import (
	"fmt"
	"strings"
)

// Layout selects where the namespace bytes land inside the full span.
type Layout uint8

const (
	// LayoutPayload keeps the identifier and size field and writes the name
	// into the reserved buffer that follows them.
	LayoutPayload Layout = iota
	// LayoutInPlace writes the name from the identifier offset onwards,
	// replacing identifier and size field. This is how stock modules are
	// rewritten; the result can't be located again.
	LayoutInPlace
)

func (l Layout) String() string {
	switch l {
	case LayoutPayload:
		return "payload"
	case LayoutInPlace:
		return "inplace"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// ParseLayout maps a layout name ("payload", "inplace") to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "payload":
		return LayoutPayload, nil
	case "inplace", "in-place", "legacy":
		return LayoutInPlace, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
}

// NameOffset is where the name starts relative to the identifier offset.
func (l Layout) NameOffset(identLen int) int {
	if l == LayoutInPlace {
		return 0
	}
	return identLen + SizeFieldLen
}

// Capacity is the largest encoded name the layout accepts for the given site.
func (l Layout) Capacity(identLen int, size uint16) int {
	return FullSpan(identLen, size) - l.NameOffset(identLen)
}
