package repository

import (
	"path/filepath"
	"strings"
	"time"
)

// Repository is a read view over one configuration source.
type Repository interface {
	// Contains reports whether key is defined in the source.
	Contains(key string) bool

	// Get returns the raw value for key. A key the source does not define
	// yields an error matching errors.ErrKeyNotFound.
	Get(key string) (any, error)
}

// Exporter is implemented by repositories that can list their whole mapping.
type Exporter interface {
	All() (map[string]any, error)
}

// Updater is implemented by repositories that accept in-place updates.
type Updater interface {
	Update(values map[string]any)
}

// Opener constructs a repository from a file-system locator.
type Opener func(path string, opts ...Option) (Repository, error)

// DefaultRemoteTimeout bounds each remote lookup.
const DefaultRemoteTimeout = 5 * time.Second

// DefaultSection is the ini section holding settings.
const DefaultSection = "settings"

type options struct {
	encoding string
	section  string
	timeout  time.Duration
}

func newOptions(opts []Option) options {
	o := options{
		section: DefaultSection,
		timeout: DefaultRemoteTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures repository construction.
type Option func(*options)

// WithEncoding sets the text encoding used to decode file contents or remote
// payloads, by WHATWG or IANA name ("utf-8", "cp1251", "latin1").
// Files default to UTF-8. Remote repositories return raw bytes when no
// encoding is set.
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// WithSection sets the ini section read by Ini. Defaults to "settings".
func WithSection(name string) Option {
	return func(o *options) {
		o.section = name
	}
}

// WithTimeout bounds each lookup made by Remote.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// DefaultOpeners returns the extension table used to resolve file locators.
// Keys are extensions without the leading dot. Ini is intentionally absent;
// register it with OpenIni when ".ini" files should be accepted.
func DefaultOpeners() map[string]Opener {
	return map[string]Opener{
		"env":  OpenEnvFile,
		"json": OpenJSON,
		"py":   OpenPython,
		"toml": OpenTOML,
		"yaml": OpenYAML,
		"yml":  OpenYAML,
	}
}

// Extension returns the lower-cased extension of path without the dot.
// A bare dotfile such as ".env" yields "env".
func Extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
