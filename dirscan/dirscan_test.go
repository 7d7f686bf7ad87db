package dirscan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/toml-maid/go-maid/config"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	res := make([]string, len(paths))
	for i, p := range paths {
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		res[i] = filepath.ToSlash(r)
	}
	return res
}

func TestFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"b.toml",
		"a.toml",
		"note.txt",
		config.FileName,
		"sub/c.toml",
		"sub/deep/d.toml",
	)

	files, err := Files(root, nil)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	want := []string{"a.toml", "b.toml", "sub/c.toml", "sub/deep/d.toml"}
	if got := rel(t, root, files); !reflect.DeepEqual(got, want) {
		t.Errorf("Files = %v, want %v", got, want)
	}
}

func TestFilesExcludes(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"a.toml",
		"target/gen.toml",
		"sub/keep.toml",
		"sub/skip.toml",
	)

	files, err := Files(root, []string{"target", "**/skip.toml"})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	want := []string{"a.toml", "sub/keep.toml"}
	if got := rel(t, root, files); !reflect.DeepEqual(got, want) {
		t.Errorf("Files = %v, want %v", got, want)
	}
}
