package repository

import (
	"os"
	"strings"

	cferrors "github.com/randalmurphal/confkit/errors"
)

// Env reads the live process environment. Nothing is cached: every call
// observes the environment as it is at that moment.
type Env struct{}

// NewEnv returns a repository over the process environment.
func NewEnv() *Env {
	return &Env{}
}

// Contains implements Repository. A variable set to the empty string is present.
func (e *Env) Contains(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

// Get implements Repository.
func (e *Env) Get(key string) (any, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil, &cferrors.KeyNotFoundError{Key: key}
	}
	return v, nil
}

// All implements Exporter with a snapshot of the environment.
func (e *Env) All() (map[string]any, error) {
	environ := os.Environ()
	values := make(map[string]any, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		// Windows keeps per-drive cwd entries like "=C:=C:\dir".
		if !ok || k == "" {
			continue
		}
		values[k] = v
	}
	return values, nil
}
