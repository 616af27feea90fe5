package errors

import (
	"errors"
	"strings"
)

// CLIError wraps an error with a user-facing hint.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Suggestion is an actionable hint for the user
	Suggestion string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())

	if e.Suggestion != "" && !strings.Contains(sb.String(), e.Suggestion) {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// Explain attaches a suggestion to confkit errors for display on a terminal.
// Errors outside the taxonomy, and nil, are returned unchanged.
func Explain(err error) error {
	if err == nil {
		return nil
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	var suggestion string
	switch {
	case IsUndefinedValue(err):
		suggestion = "Export the variable, add it to a settings file, or pass --default."
	case IsUnsupportedExtension(err):
		suggestion = "Use one of .env, .ini, .json, .py, .toml, .yaml or .yml."
	case IsUnsupportedFormat(err):
		suggestion = "The file must hold a mapping of names to values at the top level."
	case IsDoesNotExist(err):
		suggestion = "Check the path and its permissions."
	case IsInvalidValue(err):
		suggestion = "Pick a different --cast or fix the stored value."
	default:
		return err
	}
	return &CLIError{Err: err, Suggestion: suggestion}
}
