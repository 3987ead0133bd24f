package errors

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// ValidatePadding checks that a sibling gap is usable as a column count.
func ValidatePadding(padding int) error {
	if padding < 0 {
		return New(ErrCodeConfiguration, "padding must be non-negative, got %d", padding)
	}
	return nil
}

// ValidateGlyph checks that a branch glyph occupies exactly one terminal
// column. Wider or zero-width glyphs would break the column arithmetic of
// connector rows.
func ValidateGlyph(r rune) error {
	if unicode.IsControl(r) {
		return New(ErrCodeConfiguration, "branch glyph %U is a control character", r)
	}
	if w := runewidth.RuneWidth(r); w != 1 {
		return New(ErrCodeConfiguration, "branch glyph %q must be one column wide, got %d", r, w)
	}
	return nil
}

// ValidatePath validates a user supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateFormat checks that format is one of the accepted names.
// Matching is case-sensitive; callers normalize with strings.ToLower first.
func ValidateFormat(format string, accepted ...string) error {
	for _, a := range accepted {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(accepted, ", "))
}
