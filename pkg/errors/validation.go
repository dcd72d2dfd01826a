package errors

import (
	"slices"
	"strings"
)

// ValidateNonNegative rejects negative values for gap-like settings.
// The name is used verbatim in the message (e.g. "label gap").
func ValidateNonNegative(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must be >= 0, got %d", name, v)
	}
	return nil
}

// ValidatePositive rejects zero and negative values, such as a page width.
func ValidatePositive(name string, v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be > 0, got %d", name, v)
	}
	return nil
}

// ValidateOneOf checks that value is one of allowed. Matching is
// case-sensitive. The returned error carries code.
func ValidateOneOf(code Code, name, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return New(code, "invalid %s: %q (must be one of %s)", name, value, strings.Join(allowed, ", "))
}

// ValidatePath validates a user supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes
//   - Maximum length of 4096 characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}
	if len(path) > 4096 {
		return New(ErrCodeInvalidInput, "path too long (max 4096 characters)")
	}
	if strings.ContainsRune(path, 0) {
		return New(ErrCodeInvalidInput, "path contains null byte")
	}
	return nil
}
