package errors

import (
	"strings"
	"unicode"
)

// ValidateCoordinatePart validates one field of a Maven coordinate or
// exclusion (a group id or an artifact id).
//
// The rules are deliberately loose so that POM placeholders such as
// "${project.groupId}" survive:
//   - No empty values
//   - No whitespace or control characters
//   - No colons (the coordinate separator)
//
// The field argument names the part in the error message ("group", "artifact").
func ValidateCoordinatePart(field, value string) error {
	if value == "" {
		return New(ErrCodeInvalidFormat, "%s cannot be empty", field)
	}
	for _, r := range value {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidFormat, "%s %q contains whitespace or control characters", field, value)
		}
	}
	if strings.Contains(value, ":") {
		return New(ErrCodeInvalidFormat, "%s %q cannot contain ':'", field, value)
	}
	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	return nil
}

// ValidatePath validates a relative path such as a parent POM's
// relativePath.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No backslashes (Windows-style paths)
//
// Parent traversal ("../pom.xml") is allowed since that is the common case
// for a parent reference.
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

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
