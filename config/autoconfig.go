package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	cferrors "github.com/randalmurphal/confkit/errors"
	"github.com/randalmurphal/confkit/repository"
)

// AutoConfig discovers its configuration file by walking up from a search
// path and checking each directory for DefaultFilenames (or the names set
// with WithFilenames), in order. The first match decides the repository;
// when nothing matches the repository is Empty and only the environment and
// defaults can answer.
//
// Discovery runs once, on Load or on the first Get. It is not synchronized:
// call Load before sharing an AutoConfig between goroutines.
type AutoConfig struct {
	searchPath string
	settings   settings
	openOpts   []Option

	config *Config
	path   string
}

// NewAuto returns an AutoConfig that starts searching at searchPath.
// An empty searchPath uses the process working directory.
func NewAuto(searchPath string, opts ...Option) *AutoConfig {
	return &AutoConfig{
		searchPath: searchPath,
		settings:   newSettings(opts),
		openOpts:   opts,
	}
}

// Load runs discovery if it has not run yet. A file that is found but
// cannot be opened or parsed is an error; failing to probe a directory is
// not, and leaves the repository Empty.
func (a *AutoConfig) Load() error {
	if a.config != nil {
		return nil
	}

	path := a.find()
	repo, err := a.open(path)
	if err != nil {
		return err
	}

	a.path = path
	a.config = New(repo, a.openOpts...)
	return nil
}

// Get resolves option against the discovered repository.
func (a *AutoConfig) Get(option string, opts ...LookupOption) (any, error) {
	if err := a.Load(); err != nil {
		return nil, err
	}
	return a.config.Get(option, opts...)
}

// Lookup is like Get and also reports where the value came from.
func (a *AutoConfig) Lookup(option string, opts ...LookupOption) (any, Source, error) {
	if err := a.Load(); err != nil {
		return nil, "", err
	}
	return a.config.Lookup(option, opts...)
}

// Path returns the discovered file, or "" when discovery has not run or
// found nothing.
func (a *AutoConfig) Path() string {
	return a.path
}

// Config returns the resolved Config, running discovery if needed.
func (a *AutoConfig) Config() (*Config, error) {
	if err := a.Load(); err != nil {
		return nil, err
	}
	return a.config, nil
}

// find walks from the search path to the file-system root.
func (a *AutoConfig) find() string {
	log := a.settings.logger

	start := a.searchPath
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Warn("cannot determine working directory, skipping discovery", "error", err)
			return ""
		}
		start = wd
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		log.Warn("cannot resolve search path, skipping discovery", "path", start, "error", err)
		return ""
	}

	for {
		for _, name := range a.settings.filenames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			switch {
			case err == nil && !info.IsDir():
				log.Debug("found configuration file", "path", candidate)
				return candidate
			case err != nil && !errors.Is(err, fs.ErrNotExist):
				log.Warn("cannot probe for configuration file, treating as absent",
					"path", candidate, "error", err)
				return ""
			}
		}
		log.Debug("no configuration file in directory", "dir", dir)

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	log.Debug("no configuration file found", "search_path", start)
	return ""
}

func (a *AutoConfig) open(path string) (repository.Repository, error) {
	if path == "" {
		return repository.NewEmpty(), nil
	}

	opener, err := autoOpener(path)
	if err != nil {
		return nil, err
	}
	return opener(path, repository.WithEncoding(a.settings.encoding))
}

// autoOpener picks the reader for a discovered file. Unlike MultiConfig,
// discovery always understands ".ini".
func autoOpener(path string) (repository.Opener, error) {
	ext := repository.Extension(path)
	if ext == "ini" {
		return repository.OpenIni, nil
	}
	if opener, ok := repository.DefaultOpeners()[ext]; ok {
		return opener, nil
	}
	return nil, &cferrors.UnsupportedExtensionError{Path: path, Ext: ext}
}
