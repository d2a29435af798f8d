package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// File stores each key as its own file under a data directory. Values are
// written atomically (temp file + rename) so a crash mid-write leaves the
// previous value intact rather than a truncated one.
type File struct {
	dir string
}

// invalidKeyChars matches characters that cannot appear in a filename.
var invalidKeyChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// NewFile creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %q: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

// Get reads the value stored under key. A missing file is a missing key.
func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes value under key.
func (f *File) Set(_ context.Context, key, value string) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit key %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; writes are committed as they happen.
func (f *File) Close() error {
	return nil
}

func (f *File) path(key string) string {
	name := invalidKeyChars.ReplaceAllString(key, "_")
	return filepath.Join(f.dir, name+".json")
}
