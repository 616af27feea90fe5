// Package cast converts resolved configuration values into the types an
// application wants.
//
// A cast is any Func. The lookup layer applies the caller's cast to whatever it
// resolved, whether that came from the environment, a repository, or a default,
// so defaults go through the same validation as real values:
//
//	debug, err := cfg.Get("DEBUG", config.Default(false), config.Cast(cast.Bool))
//	hosts, err := cfg.Get("ALLOWED_HOSTS", config.Cast(cast.CSV()))
//	level, err := cfg.Get("LOG_LEVEL", config.Cast(cast.Choices([]any{"debug", "info"})))
//
// Structured repositories (JSON, YAML) hand back native Go values. Bool leaves
// a native bool untouched and every other cast is only applied when requested.
package cast
