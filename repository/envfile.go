package repository

import (
	"bufio"
	"strings"
)

// EnvFile is a repository over ".env" style KEY=VALUE lines.
//
// Parsing rules:
//   - blank lines, lines starting with '#', and lines without '=' are skipped
//   - key and value are trimmed of surrounding whitespace
//   - an unquoted '#' preceded by whitespace starts a trailing comment
//   - one layer of matching single or double quotes around the value is removed
//   - no interpolation: "%%" and "%(name)s" are kept literally
//   - no shell syntax: "export" stays part of the key and backslash escapes
//     are not processed
type EnvFile struct {
	static
	path string
}

// NewEnvFile reads and parses the file at path.
func NewEnvFile(path string, opts ...Option) (*EnvFile, error) {
	o := newOptions(opts)
	content, err := readSource(path, o.encoding)
	if err != nil {
		return nil, err
	}
	return &EnvFile{static: static{values: parseEnv(content)}, path: path}, nil
}

// OpenEnvFile is the Opener for ".env" files.
func OpenEnvFile(path string, opts ...Option) (Repository, error) {
	r, err := NewEnvFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// NewEnvString parses ".env" formatted content held in memory, such as a
// secret payload fetched from a secret manager.
func NewEnvString(content string) *EnvFile {
	return &EnvFile{static: static{values: parseEnv(content)}}
}

// Path returns the file the repository was read from, empty for in-memory content.
func (f *EnvFile) Path() string {
	return f.path
}

func parseEnv(content string) map[string]any {
	values := make(map[string]any)

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(k)] = unquote(stripComment(strings.TrimSpace(v)))
	}
	return values
}

// stripComment drops a trailing "# ..." that sits outside quotes and follows
// whitespace, then trims the remainder.
func stripComment(v string) string {
	var quote byte
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '#' && i > 0 && (v[i-1] == ' ' || v[i-1] == '\t'):
			return strings.TrimSpace(v[:i])
		}
	}
	return v
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '\'' || v[0] == '"') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
