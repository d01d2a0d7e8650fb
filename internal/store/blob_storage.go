package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dkozyrev/tablesync/internal/config"
)

type fileBlobStorage struct {
	dir string
}

// NewFileBlobStorage builds a filesystem-backed [BlobStorage], one file per
// record uuid under cfg.BlobDir.
func NewFileBlobStorage(cfg config.Files) (BlobStorage, error) {
	if err := os.MkdirAll(cfg.BlobDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return &fileBlobStorage{dir: cfg.BlobDir}, nil
}

func (s *fileBlobStorage) Save(uuid string, fill func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(s.dir, uuid+".*.part")
	if err != nil {
		return fmt.Errorf("failed to create temporary blob file: %w", err)
	}

	if err := fill(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temporary blob file: %w", err)
	}

	// The blob becomes visible only after the whole content was written.
	if err := os.Rename(tmp.Name(), s.Path(uuid)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to commit blob %s: %w", uuid, err)
	}

	return nil
}

func (s *fileBlobStorage) Open(uuid string) (io.ReadCloser, error) {
	f, err := os.Open(s.Path(uuid))
	if os.IsNotExist(err) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open blob %s: %w", uuid, err)
	}
	return f, nil
}

func (s *fileBlobStorage) Path(uuid string) string {
	return filepath.Join(s.dir, uuid)
}

func (s *fileBlobStorage) Exists(uuid string) bool {
	_, err := os.Stat(s.Path(uuid))
	return err == nil
}

func (s *fileBlobStorage) Size(uuid string) (int64, error) {
	info, err := os.Stat(s.Path(uuid))
	if os.IsNotExist(err) {
		return 0, ErrBlobNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to stat blob %s: %w", uuid, err)
	}
	return info.Size(), nil
}

func (s *fileBlobStorage) Remove(uuid string) error {
	err := os.Remove(s.Path(uuid))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove blob %s: %w", uuid, err)
	}
	return nil
}
