// Package config loads the formatter's own configuration file.
//
// Configuration lives in a toml-maid.toml found by walking parent
// directories from the working directory; absent a file, defaults apply.
// A malformed configuration is fatal for the whole run: sort order
// correctness depends on it, so nothing is formatted under a bad config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
)

// FileName is the configuration file looked up in parent directories.
// Scans skip the file itself; its key order is the configuration's meaning.
const FileName = "toml-maid.toml"

// ErrConfig reports a malformed configuration: bad TOML, unknown keys, or
// an invalid exclude pattern.
var ErrConfig = errors.New("config error")

type Config struct {
	// Keys are the important keys in standard tables, sorted first in the
	// configured order; remaining keys sort lexicographically.
	Keys []string `toml:"keys"`

	// InlineKeys rank inline-table keys, independently of Keys.
	InlineKeys []string `toml:"inline_keys"`

	// SortArrays sorts string array elements. With mixed types, strings
	// order first and other values keep their original order.
	SortArrays bool `toml:"sort_arrays"`

	// Excludes are glob patterns, matched against paths relative to the
	// scanned folder.
	Excludes []string `toml:"excludes"`
}

func Default() *Config {
	return &Config{}
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrConfig, path, undec[0].String())
	}
	for _, pat := range cfg.Excludes {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("%w: %s: invalid exclude pattern %q", ErrConfig, path, pat)
		}
	}
	return cfg, nil
}

// Find walks from dir up to the filesystem root looking for FileName.
// It returns the path and true when a config file exists.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, FileName)
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
