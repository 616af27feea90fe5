package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/randalmurphal/confkit/cast"
	cferrors "github.com/randalmurphal/confkit/errors"
	"github.com/randalmurphal/confkit/repository"
)

// Getter is implemented by Config, AutoConfig and MultiConfig.
type Getter interface {
	Get(option string, opts ...LookupOption) (any, error)
}

// Config resolves options against one repository.
//
// Resolution order for Get:
//  1. the process environment, when env override is on (the default)
//  2. the repository
//  3. the Default lookup option
//
// The Cast lookup option is then applied to whichever value was found.
// An option found nowhere, with no default, fails with an
// errors.UndefinedValueError naming it.
type Config struct {
	repo        repository.Repository
	envOverride bool
	logger      *slog.Logger
}

// New returns a Config over repo. A nil repo behaves as repository.Empty.
func New(repo repository.Repository, opts ...Option) *Config {
	s := newSettings(opts)
	if repo == nil {
		repo = repository.NewEmpty()
	}
	return &Config{
		repo:        repo,
		envOverride: s.envOverride,
		logger:      s.logger,
	}
}

// Repository returns the wrapped repository.
func (c *Config) Repository() repository.Repository {
	return c.repo
}

// Get resolves option and applies the cast.
func (c *Config) Get(option string, opts ...LookupOption) (any, error) {
	v, _, err := c.Lookup(option, opts...)
	return v, err
}

// MustGet is like Get but panics on error. It is meant for package-level
// settings evaluated at startup.
func (c *Config) MustGet(option string, opts ...LookupOption) any {
	v, err := c.Get(option, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup is like Get and also reports where the value came from.
func (c *Config) Lookup(option string, opts ...LookupOption) (any, Source, error) {
	l := newLookup(opts)

	raw, src, err := c.resolve(option, l)
	if err != nil {
		return nil, "", err
	}

	v, err := l.cast(raw)
	if err != nil {
		return nil, src, fmt.Errorf("cast %s from %s: %w", option, src, err)
	}
	return v, src, nil
}

func (c *Config) resolve(option string, l lookup) (any, Source, error) {
	if c.envOverride {
		// An empty variable is still present.
		if v, ok := os.LookupEnv(option); ok {
			return v, SourceEnv, nil
		}
	}

	v, err := c.repo.Get(option)
	switch {
	case err == nil:
		return v, SourceRepository, nil
	case !cferrors.IsKeyNotFound(err):
		return nil, "", fmt.Errorf("lookup %s: %w", option, err)
	}

	if l.hasDefault {
		return l.def, SourceDefault, nil
	}
	return nil, "", cferrors.NewUndefinedValue(option)
}

// As resolves option through g and asserts the result to T. Use it after a
// Cast that produces T, or for repositories holding native values.
func As[T any](g Getter, option string, opts ...LookupOption) (T, error) {
	var zero T
	v, err := g.Get(option, opts...)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &cferrors.InvalidValueError{
			Value:  v,
			Reason: fmt.Sprintf("%s is %T, not %T", option, v, zero),
		}
	}
	return t, nil
}

// String resolves option as a string. The string cast runs after any
// cast passed in opts.
func String(g Getter, option string, opts ...LookupOption) (string, error) {
	return As[string](g, option, withCast(opts, cast.String)...)
}

// Bool resolves option as a boolean using cast.Bool.
func Bool(g Getter, option string, opts ...LookupOption) (bool, error) {
	return As[bool](g, option, withCast(opts, cast.Bool)...)
}

// Int resolves option as an int using cast.Int.
func Int(g Getter, option string, opts ...LookupOption) (int, error) {
	return As[int](g, option, withCast(opts, cast.Int)...)
}

// withCast chains final after the cast already present in opts.
func withCast(opts []LookupOption, final cast.Func) []LookupOption {
	l := newLookup(opts)
	first := l.cast
	chained := func(v any) (any, error) {
		v, err := first(v)
		if err != nil {
			return nil, err
		}
		return final(v)
	}

	out := make([]LookupOption, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, Cast(chained))
}
