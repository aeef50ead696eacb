package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File keeps each key in its own file under a directory. Writes go to a
// temp file and are renamed into place.
type File struct {
	dir string
}

// OpenFile prepares dir for use as a File provider.
func OpenFile(dir string) (*File, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &File{dir: filepath.Clean(dir)}, nil
}

func (f *File) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *File) Get(key string) (string, bool, error) {
	p, err := f.path(key)
	if err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(b), true, nil
}

func (f *File) Set(key, value string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func (f *File) Remove(key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
