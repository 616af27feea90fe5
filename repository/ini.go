package repository

import (
	"fmt"
	"strings"

	cferrors "github.com/randalmurphal/confkit/errors"
	"gopkg.in/ini.v1"
)

// Ini is a repository over one section of an ".ini" file.
//
// Keys are case-insensitive. Values support "%(name)s" interpolation from
// the same section, and "%%" stands for a literal percent sign.
type Ini struct {
	path    string
	section *ini.Section
}

// NewIni reads and parses the file at path. A file without the configured
// section (WithSection, default "settings") yields an empty repository.
func NewIni(path string, opts ...Option) (*Ini, error) {
	o := newOptions(opts)
	content, err := readSource(path, o.encoding)
	if err != nil {
		return nil, err
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:                true,
		IgnoreInlineComment:        true,
		AllowPythonMultilineValues: true,
		PreserveSurroundedQuote:    true,
	}, []byte(content))
	if err != nil {
		return nil, fmt.Errorf("parse ini %s: %w", path, err)
	}

	r := &Ini{path: path}
	if sec, err := file.GetSection(o.section); err == nil {
		r.section = sec
	}
	return r, nil
}

// OpenIni is the Opener for ".ini" files.
func OpenIni(path string, opts ...Option) (Repository, error) {
	r, err := NewIni(path, opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Contains implements Repository.
func (r *Ini) Contains(key string) bool {
	return r.section != nil && r.section.HasKey(key)
}

// Get implements Repository.
func (r *Ini) Get(key string) (any, error) {
	if !r.Contains(key) {
		return nil, &cferrors.KeyNotFoundError{Key: key}
	}
	return r.interpolate(key, r.section.Key(key).Value(), 1)
}

// All implements Exporter. Keys are reported lower-cased.
func (r *Ini) All() (map[string]any, error) {
	values := make(map[string]any)
	if r.section == nil {
		return values, nil
	}
	for _, k := range r.section.Keys() {
		v, err := r.interpolate(k.Name(), k.Value(), 1)
		if err != nil {
			return nil, err
		}
		values[k.Name()] = v
	}
	return values, nil
}

// Path returns the file the repository was read from.
func (r *Ini) Path() string {
	return r.path
}

// maxInterpolationDepth bounds chains of %(name)s references.
const maxInterpolationDepth = 10

// interpolate expands value in a single left-to-right pass: "%%" becomes a
// literal "%" and "%(name)s" is replaced by the expanded value of name from
// the same section. Any other use of "%" is a syntax error.
func (r *Ini) interpolate(key, value string, depth int) (string, error) {
	if depth > maxInterpolationDepth {
		return "", &cferrors.InvalidValueError{Value: value, Reason: fmt.Sprintf("interpolation of %s is nested too deeply", key)}
	}

	var sb strings.Builder
	for {
		i := strings.IndexByte(value, '%')
		if i < 0 {
			sb.WriteString(value)
			return sb.String(), nil
		}
		sb.WriteString(value[:i])
		rest := value[i:]

		switch {
		case strings.HasPrefix(rest, "%%"):
			sb.WriteByte('%')
			value = rest[2:]
		case strings.HasPrefix(rest, "%("):
			end := strings.Index(rest, ")s")
			if end < 0 {
				return "", &cferrors.InvalidValueError{Value: rest, Reason: fmt.Sprintf("bad interpolation syntax in %s", key)}
			}
			name := rest[2:end]
			if !r.section.HasKey(name) {
				return "", &cferrors.InvalidValueError{Value: name, Reason: fmt.Sprintf("%s references an undefined key", key)}
			}
			sub, err := r.interpolate(name, r.section.Key(name).Value(), depth+1)
			if err != nil {
				return "", err
			}
			sb.WriteString(sub)
			value = rest[end+2:]
		default:
			return "", &cferrors.InvalidValueError{Value: rest, Reason: fmt.Sprintf("%s: '%%' must be followed by '%%' or '('", key)}
		}
	}
}
