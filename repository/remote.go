package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	cferrors "github.com/randalmurphal/confkit/errors"
)

// KVClient is the key/value store behind a Remote repository.
type KVClient interface {
	// Get fetches the value at key. found is false when the store has no
	// such key; err is reserved for transport and server failures.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
}

// Lister is optionally implemented by a KVClient to enumerate a key prefix.
type Lister interface {
	List(ctx context.Context, prefix string) (map[string][]byte, error)
}

// ErrListUnsupported is returned by Remote.All when the client cannot list keys.
var ErrListUnsupported = errors.New("remote client does not support listing")

// Remote is a repository over a remote key/value store. Keys are looked up
// under root as "root/key". Keys that could address something outside root
// (a leading "/", or an empty, "." or ".." segment) are never sent to the
// store and are reported as not found.
//
// Without WithEncoding, values are returned as raw []byte. With an encoding
// they are decoded to strings.
type Remote struct {
	client   KVClient
	root     string
	encoding string
	timeout  time.Duration
}

// NewRemote returns a repository reading keys under root from client.
func NewRemote(client KVClient, root string, opts ...Option) *Remote {
	o := newOptions(opts)
	return &Remote{
		client:   client,
		root:     strings.Trim(root, "/"),
		encoding: o.encoding,
		timeout:  o.timeout,
	}
}

// Root returns the key prefix the repository reads under.
func (r *Remote) Root() string {
	return r.root
}

func (r *Remote) path(key string) string {
	if r.root == "" {
		return key
	}
	return r.root + "/" + key
}

// scopedKey reports whether key stays under the root once joined to it.
func scopedKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}
	for _, seg := range strings.Split(key, "/") {
		switch seg {
		case "", ".", "..":
			return false
		}
	}
	return true
}

// Contains implements Repository. Transport failures report false.
func (r *Remote) Contains(key string) bool {
	if !scopedKey(key) {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	_, found, err := r.client.Get(ctx, r.path(key))
	return err == nil && found
}

// Get implements Repository.
func (r *Remote) Get(key string) (any, error) {
	if !scopedKey(key) {
		return nil, &cferrors.KeyNotFoundError{Key: key}
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	data, found, err := r.client.Get(ctx, r.path(key))
	if err != nil {
		return nil, fmt.Errorf("remote get %s: %w", r.path(key), err)
	}
	if !found {
		return nil, &cferrors.KeyNotFoundError{Key: key}
	}
	return r.value(data)
}

// All implements Exporter when the client implements Lister.
func (r *Remote) All() (map[string]any, error) {
	lister, ok := r.client.(Lister)
	if !ok {
		return nil, ErrListUnsupported
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	prefix := ""
	if r.root != "" {
		prefix = r.root + "/"
	}
	entries, err := lister.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("remote list %s: %w", prefix, err)
	}

	values := make(map[string]any, len(entries))
	for k, data := range entries {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		name := strings.TrimPrefix(k, prefix)
		if !scopedKey(name) {
			continue
		}
		v, err := r.value(data)
		if err != nil {
			return nil, err
		}
		values[name] = v
	}
	return values, nil
}

func (r *Remote) value(data []byte) (any, error) {
	if r.encoding == "" {
		return data, nil
	}
	return decode(data, r.encoding)
}
