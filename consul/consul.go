// Package consul reads configuration from the Consul key/value store over
// its HTTP API. A *Client satisfies repository.KVClient and
// repository.Lister, so it plugs directly into repository.NewRemote.
package consul

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	cfhttp "github.com/randalmurphal/confkit/http"
)

// DefaultAddress is the local Consul agent.
const DefaultAddress = "http://127.0.0.1:8500"

// Config configures a Client.
type Config struct {
	// Address is the agent URL. Defaults to DefaultAddress.
	Address string

	// Token is sent as X-Consul-Token when set.
	Token string

	// Datacenter selects a datacenter other than the agent's own.
	Datacenter string

	HTTPClient *http.Client
	MaxRetries int
	RetryWait  time.Duration

	// RateLimit caps requests per second to the agent. Zero is unlimited.
	RateLimit float64

	// Logger receives retry diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// Client is a read-only Consul KV client.
type Client struct {
	http       *cfhttp.Client
	datacenter string
}

// NewClient creates a Client for the given configuration.
func NewClient(cfg Config) *Client {
	address := cfg.Address
	if address == "" {
		address = DefaultAddress
	}

	token := cfg.Token
	return &Client{
		http: cfhttp.NewClient(cfhttp.ClientConfig{
			Client:      cfg.HTTPClient,
			BaseURL:     address,
			ServiceName: "consul",
			MaxRetries:  cfg.MaxRetries,
			RetryWait:   cfg.RetryWait,
			Logger:      cfg.Logger,
			RateLimit:   cfg.RateLimit,
			BeforeRequest: func(req *http.Request) {
				if token != "" {
					req.Header.Set("X-Consul-Token", token)
				}
			},
		}),
		datacenter: cfg.Datacenter,
	}
}

// Get returns the raw value stored at key. A missing key reports
// found=false with a nil error.
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !validKey(key, false) {
		return nil, false, nil
	}
	data, err := c.http.GetRaw(ctx, c.path(key, "raw"))
	if err != nil {
		if cfhttp.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

type kvPair struct {
	Key   string
	Value *string
}

// List returns every key under prefix with its raw value. Folder entries
// (keys ending in "/") and keys without a value are omitted.
func (c *Client) List(ctx context.Context, prefix string) (map[string][]byte, error) {
	if !validKey(prefix, true) {
		return map[string][]byte{}, nil
	}
	var pairs []kvPair
	if err := c.http.Get(ctx, c.path(prefix, "recurse"), &pairs); err != nil {
		if cfhttp.IsNotFound(err) {
			return map[string][]byte{}, nil
		}
		return nil, err
	}

	values := make(map[string][]byte, len(pairs))
	for _, p := range pairs {
		if p.Value == nil || strings.HasSuffix(p.Key, "/") {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(*p.Value)
		if err != nil {
			return nil, fmt.Errorf("decode consul value %s: %w", p.Key, err)
		}
		values[p.Key] = data
	}
	return values, nil
}

// validKey rejects keys the agent would rewrite before lookup: "." and ".."
// segments, empty segments, and a leading "/". A prefix may end in "/" and
// may be empty.
func validKey(key string, prefix bool) bool {
	if prefix {
		if key == "" {
			return true
		}
		key = strings.TrimSuffix(key, "/")
	}
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

func (c *Client) path(key, flag string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	query := flag
	if c.datacenter != "" {
		query += "&dc=" + url.QueryEscape(c.datacenter)
	}
	return "/v1/kv/" + strings.Join(segments, "/") + "?" + query
}
