package cart

import (
	"errors"
	"os"
)

// Storage persists the serialized cart between sessions. It mirrors the
// browser local-storage contract the storefront grew up with: whole-blob
// reads and writes, last write wins.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileStorage keeps the snapshot in a single file.
type FileStorage struct {
	Path string
}

func (f FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (f FileStorage) Save(data []byte) error {
	return os.WriteFile(f.Path, data, 0o644)
}
