package repository

import (
	"fmt"

	cferrors "github.com/randalmurphal/confkit/errors"
	"gopkg.in/yaml.v3"
)

// YAML is a repository over a YAML document whose top level is a mapping.
// Values keep their YAML types; nested mappings are map[string]any.
// An empty document is an empty mapping.
type YAML struct {
	static
	path string
}

// NewYAML reads and parses the file at path.
func NewYAML(path string, opts ...Option) (*YAML, error) {
	o := newOptions(opts)
	content, err := readSource(path, o.encoding)
	if err != nil {
		return nil, err
	}
	values, err := parseYAML(content, path)
	if err != nil {
		return nil, err
	}
	return &YAML{static: static{values: values}, path: path}, nil
}

// OpenYAML is the Opener for ".yaml" and ".yml" files.
func OpenYAML(path string, opts ...Option) (Repository, error) {
	r, err := NewYAML(path, opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// NewYAMLString parses a YAML document held in memory.
func NewYAMLString(content string) (*YAML, error) {
	values, err := parseYAML(content, "")
	if err != nil {
		return nil, err
	}
	return &YAML{static: static{values: values}}, nil
}

// Path returns the file the repository was read from.
func (r *YAML) Path() string {
	return r.path
}

func parseYAML(content, path string) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("parse yaml %s: %w", path, err)
	}

	switch m := doc.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return m, nil
	case map[any]any:
		values := make(map[string]any, len(m))
		for k, v := range m {
			values[fmt.Sprint(k)] = v
		}
		return values, nil
	default:
		return nil, &cferrors.UnsupportedFormatError{Path: path, Got: describe(doc)}
	}
}
