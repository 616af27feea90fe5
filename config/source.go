package config

// Source indicates where a resolved value came from.
type Source string

// Resolution source constants.
const (
	// SourceEnv indicates the value came from a process environment variable.
	SourceEnv Source = "env"

	// SourceRepository indicates the value came from the wrapped repository.
	SourceRepository Source = "repository"

	// SourceDefault indicates the caller-supplied default was used.
	SourceDefault Source = "default"
)
