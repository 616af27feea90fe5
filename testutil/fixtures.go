// Package testutil provides helpers for tests that need configuration
// files on disk or a key/value store in memory.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name under dir, creating parent
// directories, and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// WriteTree creates a temporary directory holding files, keyed by
// slash-separated relative path, and returns its root. A key ending in
// "/" creates an empty directory.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		if name != "" && name[len(name)-1] == '/' {
			if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(name)), 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", name, err)
			}
			continue
		}
		WriteFile(t, root, name, content)
	}
	return root
}

// Unsetenv removes key from the environment for the duration of the test
// and restores the previous value afterwards.
func Unsetenv(t *testing.T, key string) {
	t.Helper()

	// Setenv registers the restore; the unset follows it.
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
}
