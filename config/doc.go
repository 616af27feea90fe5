// Package config resolves named options against configuration sources.
//
// Three entry points share the same lookup contract (see Getter):
//   - Config wraps one repository.Repository
//   - AutoConfig discovers settings.ini or .env by walking up from a directory
//   - MultiConfig merges an ordered list of sources, earlier sources winning
//
// # Basic Usage
//
//	cfg := config.NewAuto("")
//
//	debug, err := config.Bool(cfg, "DEBUG", config.Default(false))
//	hosts, err := config.As[[]string](cfg, "ALLOWED_HOSTS",
//	    config.Default(""), config.Cast(cast.CSV()))
//	secret, err := cfg.Get("SECRET_KEY")
//
// # Precedence
//
// For Config and AutoConfig, a variable in the process environment beats the
// repository, even when it is set to the empty string. The repository beats
// the Default lookup option. With nothing found and no default, Get returns
// an errors.UndefinedValueError naming the option.
//
// MultiConfig only reads the environment where EnvironMarker appears in its
// source list:
//
//	m := config.NewMulti([]any{config.EnvironMarker, "local.env", "base.json"})
//	m.Register("ini", repository.OpenIni)
//
// # Casting
//
// The Cast lookup option converts the resolved value, whether it came from
// the environment, a repository or the default. Casts live in package cast.
//
// # Provenance
//
// Lookup returns the Source of each value alongside it: SourceEnv,
// SourceRepository or SourceDefault.
//
// # Concurrency
//
// Config is safe for concurrent use once built. AutoConfig and MultiConfig
// load lazily without locking; call Load before sharing them.
package config
