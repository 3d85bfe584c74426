package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s, path
}

func TestFileStoreSetGet(t *testing.T) {
	s, _ := newTestStore(t)

	if _, ok := s.Get(KeyToken); ok {
		t.Fatal("fresh store should be empty")
	}
	if err := s.Set(KeyToken, "abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := s.Get(KeyToken)
	if !ok || v != "abc" {
		t.Fatalf("Get = %q, %v", v, ok)
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	s, path := newTestStore(t)
	if err := s.SetMany(map[string]string{KeyToken: "abc", KeyUser: "{}"}); err != nil {
		t.Fatalf("SetMany: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok := reopened.Get(KeyToken); !ok || v != "abc" {
		t.Fatalf("token after reopen = %q, %v", v, ok)
	}
	if v, ok := reopened.Get(KeyUser); !ok || v != "{}" {
		t.Fatalf("user after reopen = %q, %v", v, ok)
	}
}

func TestFileStoreDelete(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.SetMany(map[string]string{KeyToken: "abc", KeyUser: "{}", KeyTheme: "dark"}); err != nil {
		t.Fatalf("SetMany: %v", err)
	}
	if err := s.Delete(KeyToken, KeyUser); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := s.Get(KeyToken); ok {
		t.Fatal("token should be gone")
	}
	if _, ok := s.Get(KeyUser); ok {
		t.Fatal("user should be gone")
	}
	if v, ok := s.Get(KeyTheme); !ok || v != "dark" {
		t.Fatal("unrelated key should survive")
	}
}

func TestFileStoreClear(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := s.Get(KeyTheme); ok {
		t.Fatal("store should be empty after Clear")
	}
}

func TestFileStoreCorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore on corrupt file: %v", err)
	}
	if _, ok := s.Get(KeyToken); ok {
		t.Fatal("corrupt file should load as empty")
	}
	// And it must still be writable afterwards.
	if err := s.Set(KeyToken, "abc"); err != nil {
		t.Fatalf("Set after corrupt load: %v", err)
	}
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "state.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.Set(KeyToken, "abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("state file missing: %v", err)
	}
}
