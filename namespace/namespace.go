// Package namespace decides which namespace string is written into a module.
//
// A name is accepted when it looks like a dotted identifier:
//
//	[A-Za-z_][A-Za-z0-9_.]*   with no ".." and no trailing "."
//
// Anything else, including the empty string, is replaced by Default rather
// than rejected, so a bad name never aborts a patch.
package namespace

import "github.com/joshuapare/nsbin/internal/format"

// Default replaces names that fail validation.
const Default = format.DefaultNamespace

// IsValid reports whether name is an acceptable namespace.
func IsValid(name string) bool {
	if name == "" {
		return false
	}
	if !isStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if c == '.' {
			if name[i-1] == '.' {
				return false
			}
			continue
		}
		if !isPart(c) {
			return false
		}
	}
	return name[len(name)-1] != '.'
}

// Rule returns name when it is valid and Default otherwise.
func Rule(name string) string {
	applied, _ := Normalize(name)
	return applied
}

// Normalize is Rule that also reports whether Default was substituted.
func Normalize(name string) (applied string, substituted bool) {
	if IsValid(name) {
		return name, false
	}
	return Default, true
}

func isStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isPart(c byte) bool {
	return isStart(c) || (c >= '0' && c <= '9')
}
