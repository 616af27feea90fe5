package config

import (
	"log/slog"

	"github.com/randalmurphal/confkit/cast"
)

// DefaultFilenames are the files AutoConfig looks for in each directory,
// in order of preference.
var DefaultFilenames = []string{"settings.ini", ".env"}

type settings struct {
	logger      *slog.Logger
	envOverride bool
	filenames   []string
	encoding    string
}

func newSettings(opts []Option) settings {
	s := settings{
		envOverride: true,
		filenames:   DefaultFilenames,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Option configures Config, AutoConfig and MultiConfig construction.
type Option func(*settings)

// WithLogger sets the logger used for discovery diagnostics.
// Nil uses slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithEnvOverride controls whether the process environment is consulted
// before the repository. It is on for New and AutoConfig. MultiConfig
// ignores it: the environment only takes part there when listed as a
// source.
func WithEnvOverride(on bool) Option {
	return func(s *settings) {
		s.envOverride = on
	}
}

// WithFilenames replaces the file names AutoConfig searches for.
// Names are tried in the given order in each directory.
func WithFilenames(names ...string) Option {
	return func(s *settings) {
		if len(names) > 0 {
			s.filenames = names
		}
	}
}

// WithEncoding sets the text encoding of files opened by AutoConfig and
// MultiConfig.
func WithEncoding(name string) Option {
	return func(s *settings) {
		s.encoding = name
	}
}

type lookup struct {
	def        any
	hasDefault bool
	cast       cast.Func
}

func newLookup(opts []LookupOption) lookup {
	var l lookup
	for _, opt := range opts {
		opt(&l)
	}
	if l.cast == nil {
		l.cast = cast.Identity
	}
	return l
}

// LookupOption configures a single Get or Lookup call.
type LookupOption func(*lookup)

// Default supplies the value used when the option is not found anywhere.
// A nil default is a real default: Get returns nil instead of failing.
func Default(v any) LookupOption {
	return func(l *lookup) {
		l.def = v
		l.hasDefault = true
	}
}

// Cast sets the conversion applied to the resolved value, including a
// default. A nil fn means identity.
func Cast(fn cast.Func) LookupOption {
	return func(l *lookup) {
		l.cast = fn
	}
}
