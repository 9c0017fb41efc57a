package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File keeps one file per key under a directory.
type File struct {
	dir string
}

func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key)
}

func (f *File) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Set writes through a temp file so a crash never leaves a torn value.
func (f *File) Set(key, value string) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.dir, key+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path(key))
}
