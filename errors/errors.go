package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration lookups.
var (
	// ErrDoesNotExist indicates a configuration source could not be located or opened.
	ErrDoesNotExist = errors.New("configuration source does not exist")

	// ErrUndefinedValue indicates an option was not found and no default was supplied.
	ErrUndefinedValue = errors.New("undefined value")

	// ErrUnsupportedExtension indicates no repository type handles a file extension.
	ErrUnsupportedExtension = errors.New("unsupported file extension")

	// ErrUnsupportedFormat indicates a document whose top level is not a mapping.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrKeyNotFound indicates a repository does not contain the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidValue indicates a cast could not convert its input.
	ErrInvalidValue = errors.New("invalid value")
)

// DoesNotExistError reports a missing file or directory backing a repository.
type DoesNotExistError struct {
	// Path is the locator that could not be opened.
	Path string

	// Err is the underlying filesystem error, if any.
	Err error
}

// Error implements the error interface.
func (e *DoesNotExistError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrDoesNotExist, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrDoesNotExist, e.Path)
}

// Unwrap returns ErrDoesNotExist.
func (e *DoesNotExistError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDoesNotExist, e.Err}
	}
	return []error{ErrDoesNotExist}
}

// UndefinedValueError reports an option that no source defines.
type UndefinedValueError struct {
	// Option is the name that was looked up.
	Option string

	// Suggestion is an actionable hint for the user.
	Suggestion string
}

// NewUndefinedValue builds an UndefinedValueError with the default suggestion.
func NewUndefinedValue(option string) *UndefinedValueError {
	return &UndefinedValueError{
		Option:     option,
		Suggestion: fmt.Sprintf("Set the %s environment variable or supply a default.", option),
	}
}

// Error implements the error interface.
func (e *UndefinedValueError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Option)
	sb.WriteString(" not found")
	if e.Suggestion != "" {
		sb.WriteString(". ")
		sb.WriteString(e.Suggestion)
	}
	return sb.String()
}

// Unwrap returns ErrUndefinedValue.
func (e *UndefinedValueError) Unwrap() error {
	return ErrUndefinedValue
}

// UnsupportedExtensionError reports a source locator with an unregistered extension.
type UnsupportedExtensionError struct {
	Path string
	Ext  string
}

// Error implements the error interface.
func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("%s %q for %s", ErrUnsupportedExtension, e.Ext, e.Path)
}

// Unwrap returns ErrUnsupportedExtension.
func (e *UnsupportedExtensionError) Unwrap() error {
	return ErrUnsupportedExtension
}

// UnsupportedFormatError reports a parsed document whose top level is not a mapping.
type UnsupportedFormatError struct {
	// Path is the document location, empty for in-memory payloads.
	Path string

	// Got describes the top-level type that was found (e.g. "list").
	Got string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: top level is %s, want mapping", ErrUnsupportedFormat, e.Got)
	}
	return fmt.Sprintf("%s: %s: top level is %s, want mapping", ErrUnsupportedFormat, e.Path, e.Got)
}

// Unwrap returns ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// KeyNotFoundError reports a key absent from a single repository.
type KeyNotFoundError struct {
	Key string
}

// Error implements the error interface.
func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrKeyNotFound, e.Key)
}

// Unwrap returns ErrKeyNotFound.
func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

// InvalidValueError reports a value rejected by a cast.
type InvalidValueError struct {
	// Value is the offending input.
	Value any

	// Reason explains the rejection.
	Reason string

	// Valid lists the accepted values when the set is closed (choices).
	Valid []any
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	if len(e.Valid) > 0 {
		return fmt.Sprintf("%s: %s: %#v; valid values are %#v", ErrInvalidValue, e.Reason, e.Value, e.Valid)
	}
	return fmt.Sprintf("%s: %s: %#v", ErrInvalidValue, e.Reason, e.Value)
}

// Unwrap returns ErrInvalidValue.
func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}
