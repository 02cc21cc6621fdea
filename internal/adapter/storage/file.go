package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.BlobStorage = (*FileStorage)(nil)

// A FileStorage persists one file per key inside a directory. It is
// the default driver: the closest server-side analog of the browser
// profile the original cart lived in.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (FileStorage, error) {
	const op = "FileStorage"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return FileStorage{}, fmt.Errorf("%s: %w", op, err)
	}
	return FileStorage{dir}, nil
}

func (s FileStorage) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "FileStorage.Get"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %q: %w", op, key, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func (s FileStorage) Set(ctx context.Context, key string, value []byte) error {
	const op = "FileStorage.Set"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
