package store

import (
	"context"
	"fmt"

	"github.com/dkozyrev/tablesync/internal/config"
	"github.com/dkozyrev/tablesync/internal/logger"
)

// ClientStorages groups the client-side storage layer: the record store, the
// settings key/value store, and the blob store for file-backed records.
type ClientStorages struct {
	TableObjects LocalStorage
	Settings     SettingsRepository
	Blobs        BlobStorage
}

// NewClientStorages opens the local SQLite database (creating the file when
// missing), runs pending schema migrations, prepares the blob directory, and
// wires the repositories.
func NewClientStorages(cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewFileBlobStorage(cfg.Files)
	if err != nil {
		return nil, fmt.Errorf("blob storage error: %w", err)
	}

	return &ClientStorages{
		TableObjects: NewTableObjectRepository(db, log),
		Settings:     NewSettingsRepository(db, log),
		Blobs:        blobs,
	}, nil
}
