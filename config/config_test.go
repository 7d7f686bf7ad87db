package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
keys = ["package", "name", "version"]
inline_keys = ["version"]
sort_arrays = true
excludes = ["target/**", "vendor"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Keys) != 3 || cfg.Keys[0] != "package" {
		t.Errorf("Keys = %v", cfg.Keys)
	}
	if len(cfg.InlineKeys) != 1 || cfg.InlineKeys[0] != "version" {
		t.Errorf("InlineKeys = %v", cfg.InlineKeys)
	}
	if !cfg.SortArrays {
		t.Errorf("SortArrays = false")
	}
	if len(cfg.Excludes) != 2 {
		t.Errorf("Excludes = %v", cfg.Excludes)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad toml", content: "keys = [\n"},
		{name: "unknown key", content: "sort_keys = true\n"},
		{name: "bad exclude pattern", content: "excludes = [\"[\"]\n"},
	}
	for _, tt := range tests {
		path := writeConfig(t, t.TempDir(), tt.content)
		if _, err := Load(path); !errors.Is(err, ErrConfig) {
			t.Errorf("%s: got %v, want ErrConfig", tt.name, err)
		}
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "sort_arrays = true\n")
	deep := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok := Find(deep)
	if !ok {
		t.Fatalf("Find(%q) found nothing", deep)
	}
	if path != filepath.Join(root, FileName) {
		t.Errorf("Find = %q, want %q", path, filepath.Join(root, FileName))
	}
}

func TestFindMissing(t *testing.T) {
	// Find keeps walking to the filesystem root, so only assert that
	// nothing is found in the empty directory itself.
	dir := t.TempDir()
	if path, ok := Find(dir); ok && filepath.Dir(path) == dir {
		t.Errorf("Find(%q) = %q, want none in %q itself", dir, path, dir)
	}
}
