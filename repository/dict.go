package repository

import (
	"maps"
	"sync"

	cferrors "github.com/randalmurphal/confkit/errors"
)

// Dict is a mutable in-memory repository.
type Dict struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewDict wraps values directly; updates through the repository are visible
// in the caller's map. A nil map starts an empty repository.
func NewDict(values map[string]any) *Dict {
	if values == nil {
		values = make(map[string]any)
	}
	return &Dict{values: values}
}

// Contains implements Repository.
func (d *Dict) Contains(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.values[key]
	return ok
}

// Get implements Repository.
func (d *Dict) Get(key string) (any, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.values[key]
	if !ok {
		return nil, &cferrors.KeyNotFoundError{Key: key}
	}
	return v, nil
}

// All implements Exporter with a shallow copy of the mapping.
func (d *Dict) All() (map[string]any, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return maps.Clone(d.values), nil
}

// Update implements Updater. Keys in values overwrite existing keys.
func (d *Dict) Update(values map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	maps.Copy(d.values, values)
}

// Empty is the repository used when no source could be found.
// It never contains anything.
type Empty struct{}

// NewEmpty returns an Empty repository.
func NewEmpty() *Empty {
	return &Empty{}
}

// Contains implements Repository.
func (Empty) Contains(string) bool {
	return false
}

// Get implements Repository.
func (Empty) Get(key string) (any, error) {
	return nil, &cferrors.KeyNotFoundError{Key: key}
}

// All implements Exporter.
func (Empty) All() (map[string]any, error) {
	return map[string]any{}, nil
}

// static is the read-only mapping behind file-backed repositories.
type static struct {
	values map[string]any
}

func (s static) Contains(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s static) Get(key string) (any, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, &cferrors.KeyNotFoundError{Key: key}
	}
	return v, nil
}

func (s static) All() (map[string]any, error) {
	return maps.Clone(s.values), nil
}
