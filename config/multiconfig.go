package config

import (
	"fmt"
	"slices"

	cferrors "github.com/randalmurphal/confkit/errors"
	"github.com/randalmurphal/confkit/repository"
)

// EnvironMarker stands for the process environment in a MultiConfig
// source list.
const EnvironMarker = ".os"

// MultiConfig merges an ordered list of sources. A source is one of:
//   - a file path, opened by the reader registered for its extension
//   - EnvironMarker, for the process environment
//   - a repository.Repository value
//
// Sources earlier in the list win. The environment has no special
// precedence here: it ranks wherever EnvironMarker appears.
//
// Sources are opened and merged once, on Load or on the first Get. Errors
// are not cached, so a failed Load can be retried. Like AutoConfig,
// MultiConfig is not synchronized.
type MultiConfig struct {
	sources  []any
	openers  map[string]repository.Opener
	settings settings
	opts     []Option

	config *Config
}

// NewMulti returns a MultiConfig over sources, highest priority first.
func NewMulti(sources []any, opts ...Option) *MultiConfig {
	return &MultiConfig{
		sources:  sources,
		openers:  repository.DefaultOpeners(),
		settings: newSettings(opts),
		opts:     opts,
	}
}

// Register maps a file extension (without the dot) to a reader. ".ini"
// is not registered by default:
//
//	m.Register("ini", repository.OpenIni)
//
// Registering after the first Load has no effect.
func (m *MultiConfig) Register(ext string, opener repository.Opener) {
	m.openers[repository.Extension("."+ext)] = opener
}

// Load opens every source and merges them.
func (m *MultiConfig) Load() error {
	if m.config != nil {
		return nil
	}

	repos := make([]repository.Repository, len(m.sources))
	for i, src := range m.sources {
		repo, err := m.resolve(src)
		if err != nil {
			return err
		}
		repos[i] = repo
	}

	merged := repository.NewDict(nil)
	for i := len(repos) - 1; i >= 0; i-- {
		exp, ok := repos[i].(repository.Exporter)
		if !ok {
			return fmt.Errorf("merge source %d: %T does not implement repository.Exporter", i, repos[i])
		}
		values, err := exp.All()
		if err != nil {
			return fmt.Errorf("merge source %d: %w", i, err)
		}
		merged.Update(values)
	}

	m.settings.logger.Debug("merged configuration sources", "sources", len(repos))
	m.config = New(merged, append(slices.Clip(m.opts), WithEnvOverride(false))...)
	return nil
}

// Get resolves option against the merged sources.
func (m *MultiConfig) Get(option string, opts ...LookupOption) (any, error) {
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m.config.Get(option, opts...)
}

// Lookup is like Get and also reports where the value came from. Values
// from any source, the environment included, report SourceRepository.
func (m *MultiConfig) Lookup(option string, opts ...LookupOption) (any, Source, error) {
	if err := m.Load(); err != nil {
		return nil, "", err
	}
	return m.config.Lookup(option, opts...)
}

// Config returns the Config over the merged sources, loading them if needed.
func (m *MultiConfig) Config() (*Config, error) {
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m.config, nil
}

func (m *MultiConfig) resolve(src any) (repository.Repository, error) {
	switch s := src.(type) {
	case repository.Repository:
		return s, nil
	case string:
		if s == EnvironMarker {
			return repository.NewEnv(), nil
		}
		ext := repository.Extension(s)
		opener, ok := m.openers[ext]
		if !ok {
			return nil, &cferrors.UnsupportedExtensionError{Path: s, Ext: ext}
		}
		m.settings.logger.Debug("opening configuration source", "path", s)
		return opener(s, repository.WithEncoding(m.settings.encoding))
	default:
		return nil, &cferrors.InvalidValueError{Value: src, Reason: "unsupported source type"}
	}
}
