// Package dirscan finds the TOML files under a folder.
//
// The walk prunes excluded directories, skips everything that is not a
// .toml file, and never yields the formatter's own configuration file.
// Exclude patterns are doublestar globs matched against the path relative
// to the scanned root, in slash form on every platform.
package dirscan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/toml-maid/go-maid/config"
)

// Files walks root and returns the relative-sorted list of TOML file
// paths, joined back onto root.
func Files(root string, excludes []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			return rerr
		}
		if rel == "." {
			return nil
		}
		if excluded(rel, excludes) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".toml") || d.Name() == config.FileName {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	for i, rel := range files {
		files[i] = filepath.Join(root, rel)
	}
	return files, nil
}

func excluded(rel string, excludes []string) bool {
	rel = filepath.ToSlash(rel)
	for _, pat := range excludes {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}
