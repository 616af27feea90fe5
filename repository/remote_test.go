package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/randalmurphal/confkit/cast"
	cferrors "github.com/randalmurphal/confkit/errors"
	"github.com/randalmurphal/confkit/testutil"
)

// onlyGet hides the List method of a KV.
type onlyGet struct {
	kv *testutil.KV
}

func (o onlyGet) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return o.kv.Get(ctx, key)
}

func newKV() *testutil.KV {
	return testutil.NewKV(map[string]string{
		"myapp/secret_key": "some really secure secret key",
		"myapp/debug":      "False",
		"staging/debug":    "True",
		"unaccessible":     "outside the root",
		"other/secret":     "outside-root",
	})
}

func TestRemote_RootScoping(t *testing.T) {
	kv := newKV()
	repo := NewRemote(kv, "myapp")

	if repo.Contains("unaccessible") {
		t.Error("keys outside the root should not be visible")
	}
	if _, err := repo.Get("unaccessible"); !cferrors.IsKeyNotFound(err) {
		t.Errorf("Get(unaccessible) error = %v, want key not found", err)
	}
	if !repo.Contains("secret_key") {
		t.Error("Contains(secret_key) = false")
	}

	calls := kv.Calls
	for _, key := range []string{"../other/secret", "./secret_key", "/secret_key", "a//b", "debug/..", ""} {
		if repo.Contains(key) {
			t.Errorf("Contains(%q) = true, want false", key)
		}
		if _, err := repo.Get(key); !cferrors.IsKeyNotFound(err) {
			t.Errorf("Get(%q) error = %v, want key not found", key, err)
		}
	}
	if kv.Calls != calls {
		t.Errorf("escaping keys reached the store %d times", kv.Calls-calls)
	}
}

func TestRemote_RawBytesWithoutEncoding(t *testing.T) {
	repo := NewRemote(newKV(), "myapp")

	got, err := repo.Get("debug")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if _, ok := got.([]byte); !ok {
		t.Fatalf("Get() = %T, want []byte", got)
	}
	if _, err := cast.ToBool(got); !cferrors.IsInvalidValue(err) {
		t.Errorf("ToBool(raw bytes) error = %v, want invalid value", err)
	}
}

func TestRemote_Encoding(t *testing.T) {
	repo := NewRemote(newKV(), "/myapp/", WithEncoding("utf-8"))
	if repo.Root() != "myapp" {
		t.Errorf("Root() = %q, want myapp", repo.Root())
	}

	got, err := repo.Get("debug")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	b, err := cast.ToBool(got)
	if err != nil {
		t.Fatalf("ToBool() error = %v", err)
	}
	if b {
		t.Error("debug should be false")
	}
}

func TestRemote_TransportError(t *testing.T) {
	kv := newKV()
	kv.Err = errors.New("connection refused")
	repo := NewRemote(kv, "myapp", WithTimeout(time.Second))

	_, err := repo.Get("debug")
	if err == nil || cferrors.IsKeyNotFound(err) {
		t.Fatalf("Get() error = %v, want transport error", err)
	}
	if !errors.Is(err, kv.Err) {
		t.Errorf("Get() error should wrap the transport error")
	}
	if repo.Contains("debug") {
		t.Error("Contains() should be false on transport error")
	}
	if !kv.Deadline {
		t.Error("lookups should carry a deadline")
	}
}

func TestRemote_All(t *testing.T) {
	if _, err := NewRemote(onlyGet{kv: newKV()}, "myapp").All(); !errors.Is(err, ErrListUnsupported) {
		t.Errorf("All() error = %v, want ErrListUnsupported", err)
	}

	repo := NewRemote(newKV(), "myapp", WithEncoding("utf-8"))
	all, err := repo.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 2 || all["debug"] != "False" {
		t.Errorf("All() = %v, want the two keys under myapp", all)
	}
}
