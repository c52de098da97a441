package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidatePositive checks that a named length is a finite number greater than zero.
func ValidatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidOptions, "%s must be a finite number", field)
	}
	if v <= 0 {
		return New(ErrCodeInvalidOptions, "%s must be positive, got %g", field, v)
	}
	return nil
}

// ValidateNonNegative checks that a named length is finite and not below zero.
func ValidateNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidOptions, "%s must be a finite number", field)
	}
	if v < 0 {
		return New(ErrCodeInvalidOptions, "%s must not be negative, got %g", field, v)
	}
	return nil
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}

// ValidateCardName validates a divider label from a deck file.
// Names are printed on tabs, so control characters are rejected.
func ValidateCardName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidDeck, "card name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidDeck, "card name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDeck, "card name contains invalid control characters")
		}
	}
	return nil
}
