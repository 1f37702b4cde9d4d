package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileBackend stores the document in a single JSON file. Writes go through
// a temp file in the same directory followed by a rename, so a crash
// mid-write leaves the previous document intact.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to path. The parent directory is
// created on demand.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load() ([]byte, error) {
	raw, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read data file")
	}
	return raw, nil
}

func (b *FileBackend) Save(data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create data dir")
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "write data file")
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "replace data file")
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }
