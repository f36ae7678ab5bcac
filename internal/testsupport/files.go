package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// Touch creates path (and parent directories) with a small placeholder body.
func Touch(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte{0x42}, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// TouchAll creates every named file inside dir.
func TouchAll(t testing.TB, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		Touch(t, filepath.Join(dir, name))
	}
}
