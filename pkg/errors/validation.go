package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateDiagramName validates a user-supplied diagram name.
// Names are display strings, so the rules are intentionally loose:
// we only reject inputs that cannot round-trip cleanly.
func ValidateDiagramName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDiagram, "diagram name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidDiagram, "diagram name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDiagram, "diagram name contains invalid control characters")
		}
	}

	return nil
}

// ValidateDiagramPath validates a diagram file path for safety.
// It rejects paths that could be used for traversal outside the
// working tree when the path is relative.
func ValidateDiagramPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "diagram path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "diagram path contains null byte")
	}

	if !filepath.IsAbs(path) {
		clean := filepath.Clean(path)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return New(ErrCodeInvalidPath, "diagram path escapes working directory: %q", path)
		}
	}

	return nil
}
