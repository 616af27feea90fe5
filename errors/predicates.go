package errors

import "errors"

// IsDoesNotExist reports whether err indicates a missing configuration source.
func IsDoesNotExist(err error) bool {
	return errors.Is(err, ErrDoesNotExist)
}

// IsUndefinedValue reports whether err indicates an option with no value and no default.
func IsUndefinedValue(err error) bool {
	return errors.Is(err, ErrUndefinedValue)
}

// IsUnsupportedExtension reports whether err indicates an unregistered file extension.
func IsUnsupportedExtension(err error) bool {
	return errors.Is(err, ErrUnsupportedExtension)
}

// IsUnsupportedFormat reports whether err indicates a non-mapping document.
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}

// IsKeyNotFound reports whether err indicates a key missing from a repository.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsInvalidValue reports whether err indicates a cast rejected its input.
func IsInvalidValue(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}

// IsStartupError reports whether err is one of the misconfiguration failures
// that should abort application startup. Key lookups that merely miss are not.
func IsStartupError(err error) bool {
	if err == nil {
		return false
	}
	return IsDoesNotExist(err) ||
		IsUndefinedValue(err) ||
		IsUnsupportedExtension(err) ||
		IsUnsupportedFormat(err) ||
		IsInvalidValue(err)
}
