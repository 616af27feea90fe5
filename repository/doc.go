// Package repository provides uniform key-value views over configuration
// sources.
//
// Every source implements Repository: a membership test and a raw value
// fetch. Some also implement Exporter (whole-mapping export, used when
// several sources are merged) and Updater (in-place update).
//
// Available repositories:
//   - Env: the live process environment
//   - EnvFile: ".env" files with one KEY=VALUE per line (NewEnvString parses the same format from memory)
//   - Ini: one section of an ".ini" file with %(name)s interpolation
//   - JSON, YAML: documents whose top level is an object, values keep their native types
//   - Python: top-level literal assignments of a Python settings module
//   - Viper: a *viper.Viper instance, also used for ".toml" files
//   - Secret: a directory where each file name is a key and its content the value
//   - Remote: keys under a root prefix of a remote key-value store
//   - Dict: an in-memory map, used for defaults, fixtures and merged views
//   - Empty: the repository used when no source was found
//
// File-backed repositories read and parse their whole source once, at
// construction. A missing source fails construction with
// errors.ErrDoesNotExist rather than on first lookup. Later changes to the
// file are not observed.
package repository
