package util

import (
	"errors"
	"strings"
)

var errInvalidFileName = errors.New("invalid file name")

// SanitizeFileName normalizes an uploaded file name so it is safe to echo
// back and log. Traversal patterns are rejected outright, path separators
// and control characters are replaced with underscores.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case r < 0x20:
			return '_'
		}
		return r
	}, s)
	if s == "" {
		return "", errInvalidFileName
	}
	return s, nil
}
