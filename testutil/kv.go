package testutil

import (
	"context"
	"strings"
	"sync"
)

// KV is an in-memory key/value store usable as a remote repository client.
type KV struct {
	mu   sync.Mutex
	data map[string][]byte

	// Err, when set, is returned by every call.
	Err error

	// Calls counts Get and List calls.
	Calls int

	// Deadline reports whether the context of the last call had a deadline.
	Deadline bool
}

// NewKV returns a store holding values.
func NewKV(values map[string]string) *KV {
	kv := &KV{data: make(map[string][]byte, len(values))}
	for k, v := range values {
		kv.data[k] = []byte(v)
	}
	return kv
}

// Set stores value at key.
func (kv *KV) Set(key, value string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = []byte(value)
}

// Get returns the value at key.
func (kv *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.Calls++
	_, kv.Deadline = ctx.Deadline()

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if kv.Err != nil {
		return nil, false, kv.Err
	}
	v, ok := kv.data[key]
	return v, ok, nil
}

// List returns every key starting with prefix.
func (kv *KV) List(ctx context.Context, prefix string) (map[string][]byte, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.Calls++
	_, kv.Deadline = ctx.Deadline()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if kv.Err != nil {
		return nil, kv.Err
	}
	out := make(map[string][]byte)
	for k, v := range kv.data {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out, nil
}
