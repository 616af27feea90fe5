// Package confkit separates settings from code by resolving each named option
// from the process environment, configuration files, remote key/value stores
// and caller defaults.
//
// The package is organized into subpackages by concern:
//
//   - config: Config lookup with env override, AutoConfig discovery, MultiConfig merging
//   - repository: read-only key/value sources (.env, ini, json, yaml, toml, py, Consul, dicts)
//   - cast: value conversions (bool, scalars, CSV, choices)
//   - errors: failure taxonomy with sentinel errors and typed counterparts
//   - consul: Consul KV client backing the remote repository
//   - http: retrying, rate-limited HTTP client used by remote clients
//   - testutil: fixtures and fakes for tests
//
// # Quick Start
//
// Discover settings.ini or .env from the working directory upward:
//
//	import "github.com/randalmurphal/confkit/config"
//
//	cfg := config.NewAuto("")
//	debug, err := config.Bool(cfg, "DEBUG", config.Default(false))
//
// Merge explicit sources, highest priority first:
//
//	cfg := config.NewMulti([]any{".os", "settings.yaml", "defaults.json"})
//	url, err := config.String(cfg, "DATABASE_URL")
//
// See the subpackage documentation for details.
package confkit
