package repository

import (
	"fmt"
	"os"
	"path/filepath"

	cferrors "github.com/randalmurphal/confkit/errors"
)

// Secret is a repository over a directory of files, as mounted by Docker or
// Kubernetes secrets: each regular file name is a key and its content the
// value. Contents are kept verbatim, trailing newline included.
type Secret struct {
	static
	dir string
}

// NewSecret reads every regular file in dir.
func NewSecret(dir string, opts ...Option) (*Secret, error) {
	o := newOptions(opts)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &cferrors.DoesNotExistError{Path: dir, Err: err}
	}

	values := make(map[string]any, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read secret %s: %w", entry.Name(), err)
		}
		value, err := decode(data, o.encoding)
		if err != nil {
			return nil, err
		}
		values[entry.Name()] = value
	}

	return &Secret{static: static{values: values}, dir: dir}, nil
}

// Dir returns the directory the secrets were read from.
func (r *Secret) Dir() string {
	return r.dir
}
