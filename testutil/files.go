package testutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

// TempDir creates a scratch directory and returns it with its cleanup.
func TempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "sha256sum-test")
	if err != nil {
		t.Fatalf("fail on creating temp dir: %v", err)
	}
	return dir, func() { os.RemoveAll(dir) }
}

// WriteFile writes data to name under dir and returns the full path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("fail on creating %s: %v", filepath.Dir(path), err)
	}
	if err := ioutil.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("fail on writing %s: %v", path, err)
	}
	return path
}
