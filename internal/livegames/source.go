// Package livegames reads live game files from a folder or an S3 prefix.
package livegames

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const jsonSuffix = ".json"

// Source lists and reads live game documents.
type Source interface {
	Name() string
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, key string) ([]byte, error)
}

// LocalSource reads *.json files from one directory (not recursive).
type LocalSource struct {
	Dir string
}

// NewLocalSource creates a source for dir.
func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{Dir: dir}
}

func (s *LocalSource) Name() string { return "local" }

// List returns the JSON file names in lexical order. A missing directory is
// reported as an error.
func (s *LocalSource) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.Dir, err)
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), jsonSuffix) {
			continue
		}
		keys = append(keys, e.Name())
	}
	sort.Strings(keys)
	return keys, nil
}

// Read returns the contents of one listed file.
func (s *LocalSource) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if key != filepath.Base(key) {
		return nil, fmt.Errorf("invalid key %q", key)
	}
	return os.ReadFile(filepath.Join(s.Dir, key))
}
