package repository

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	cferrors "github.com/randalmurphal/confkit/errors"
)

// Viper is a repository over a *viper.Viper instance. It serves TOML files
// for MultiConfig and lets an application that already builds a viper
// instance resolve options through confkit.
//
// Keys are case-insensitive and nested tables are reachable with dotted
// keys ("database.port"), as in viper itself.
type Viper struct {
	v    *viper.Viper
	path string
}

// NewViper wraps an existing viper instance. Only values viper considers
// set (config file, defaults, overrides and bound flags or env) are visible.
func NewViper(v *viper.Viper) *Viper {
	return &Viper{v: v}
}

// NewTOML reads and parses the TOML file at path.
func NewTOML(path string, opts ...Option) (*Viper, error) {
	return newViperFile(path, "toml", opts)
}

// OpenTOML is the Opener for ".toml" files.
func OpenTOML(path string, opts ...Option) (Repository, error) {
	r, err := NewTOML(path, opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newViperFile(path, format string, opts []Option) (*Viper, error) {
	o := newOptions(opts)
	content, err := readSource(path, o.encoding)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(strings.NewReader(content)); err != nil {
		return nil, fmt.Errorf("parse %s %s: %w", format, path, err)
	}
	return &Viper{v: v, path: path}, nil
}

// Contains implements Repository.
func (r *Viper) Contains(key string) bool {
	return r.v.IsSet(key)
}

// Get implements Repository.
func (r *Viper) Get(key string) (any, error) {
	if !r.v.IsSet(key) {
		return nil, &cferrors.KeyNotFoundError{Key: key}
	}
	return r.v.Get(key), nil
}

// All implements Exporter. Keys are lower-cased top-level names; nested
// tables are map[string]any.
func (r *Viper) All() (map[string]any, error) {
	return r.v.AllSettings(), nil
}

// Path returns the file the repository was read from, empty for a wrapped
// instance.
func (r *Viper) Path() string {
	return r.path
}
