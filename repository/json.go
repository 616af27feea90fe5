package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	cferrors "github.com/randalmurphal/confkit/errors"
)

// JSON is a repository over a JSON document whose top level is an object.
// Values keep their JSON types: bool, int or float64, string, nil, []any and
// map[string]any.
type JSON struct {
	static
	path string
}

// NewJSON reads and parses the file at path.
func NewJSON(path string, opts ...Option) (*JSON, error) {
	o := newOptions(opts)
	content, err := readSource(path, o.encoding)
	if err != nil {
		return nil, err
	}
	values, err := parseJSON(content, path)
	if err != nil {
		return nil, err
	}
	return &JSON{static: static{values: values}, path: path}, nil
}

// OpenJSON is the Opener for ".json" files.
func OpenJSON(path string, opts ...Option) (Repository, error) {
	r, err := NewJSON(path, opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// NewJSONString parses a JSON document held in memory.
func NewJSONString(content string) (*JSON, error) {
	values, err := parseJSON(content, "")
	if err != nil {
		return nil, err
	}
	return &JSON{static: static{values: values}}, nil
}

// Path returns the file the repository was read from.
func (r *JSON) Path() string {
	return r.path
}

func parseJSON(content, path string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json %s: %w", path, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("parse json %s: trailing data after document", path)
	}

	m, ok := doc.(map[string]any)
	if !ok {
		return nil, &cferrors.UnsupportedFormatError{Path: path, Got: describe(doc)}
	}
	return normalizeNumbers(m).(map[string]any), nil
}

// normalizeNumbers replaces json.Number with int when integral, float64 otherwise.
func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if !bytes.ContainsAny([]byte(x), ".eE") {
			if n, err := x.Int64(); err == nil && int64(int(n)) == n {
				return int(n)
			}
		}
		f, _ := x.Float64()
		return f
	case map[string]any:
		for k, e := range x {
			x[k] = normalizeNumbers(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = normalizeNumbers(e)
		}
		return x
	default:
		return v
	}
}

// describe names the shape of a decoded document for error messages.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	case map[string]any, map[any]any:
		return "mapping"
	default:
		return "number"
	}
}
